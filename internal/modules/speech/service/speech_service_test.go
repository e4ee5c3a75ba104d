package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"brightbuddy/internal/modules/speech/domain"
	"brightbuddy/internal/modules/speech/service"
)

type recordingVoice struct {
	mu     sync.Mutex
	said   []domain.Utterance
	closed bool
	heard  chan struct{}
}

func newRecordingVoice() *recordingVoice {
	return &recordingVoice{heard: make(chan struct{}, 8)}
}

func (v *recordingVoice) Say(_ context.Context, u domain.Utterance) error {
	v.mu.Lock()
	v.said = append(v.said, u)
	v.mu.Unlock()
	v.heard <- struct{}{}
	return nil
}

func (v *recordingVoice) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	return nil
}

func TestSpeakDeliversNormalizedUtterance(t *testing.T) {
	t.Parallel()
	voice := newRecordingVoice()
	svc := service.NewSpeechService(voice, true, nil)
	if err := svc.Speak(domain.Utterance{Text: "You have said you feel Happy", Rate: 1.1, Pitch: 1.2}); err != nil {
		t.Fatalf("speak: %v", err)
	}
	select {
	case <-voice.heard:
	case <-time.After(2 * time.Second):
		t.Fatalf("voice never spoke")
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	voice.mu.Lock()
	defer voice.mu.Unlock()
	if len(voice.said) != 1 || voice.said[0].Rate != 1.1 || voice.said[0].Pitch != 1.2 {
		t.Fatalf("unexpected utterances %+v", voice.said)
	}
	if !voice.closed {
		t.Fatalf("voice should be closed")
	}
}

func TestSpeakDisabledAndInvalid(t *testing.T) {
	t.Parallel()
	voice := newRecordingVoice()
	svc := service.NewSpeechService(voice, false, nil)
	defer svc.Close()
	if err := svc.Speak(domain.Utterance{Text: ""}); err == nil {
		t.Fatalf("empty text should fail even when disabled")
	}
	if err := svc.Speak(domain.Utterance{Text: "pop"}); err != nil {
		t.Fatalf("disabled speak should be a silent no-op: %v", err)
	}
	select {
	case <-voice.heard:
		t.Fatalf("disabled voice should not speak")
	case <-time.After(50 * time.Millisecond):
	}
}
