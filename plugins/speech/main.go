package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	speechrpc "brightbuddy/internal/modules/speech/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// engineEnv forces an engine ("espeak" or "stderr"); empty means autodetect.
const engineEnv = "BRIGHTBUDDY_SPEECH_ENGINE"

type server struct {
	espeak string
}

func newServer() *server {
	if strings.EqualFold(os.Getenv(engineEnv), "stderr") {
		return &server{}
	}
	path, err := exec.LookPath("espeak")
	if err != nil {
		return &server{}
	}
	return &server{espeak: path}
}

func (s *server) GetMetadata(_ context.Context, _ *speechrpc.Empty) (*speechrpc.Metadata, error) {
	voices := []string{"stderr"}
	if s.espeak != "" {
		voices = []string{"espeak"}
	}
	return &speechrpc.Metadata{Name: "speech", Version: "1.0.0", Voices: voices}, nil
}

func (s *server) Say(ctx context.Context, in *speechrpc.SayRequest) (*speechrpc.SayResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("empty utterance")
	}
	if s.espeak == "" {
		fmt.Fprintf(os.Stderr, "say rate=%.2f pitch=%.2f: %s\n", in.Rate, in.Pitch, text)
		return &speechrpc.SayResponse{Engine: "stderr"}, nil
	}
	// espeak takes words per minute (default 175) and pitch 0..99 (default 50).
	wpm := int(175 * in.Rate)
	pitch := int(50 * in.Pitch)
	if pitch > 99 {
		pitch = 99
	}
	cmd := exec.CommandContext(ctx, s.espeak, "-s", strconv.Itoa(wpm), "-p", strconv.Itoa(pitch), text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("espeak: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return &speechrpc.SayResponse{Engine: "espeak"}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: speechrpc.HandshakeConfig,
		Plugins:         speechrpc.PluginMap(newServer()),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
