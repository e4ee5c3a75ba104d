package out

import (
	"context"
	"reflect"
	"testing"

	"brightbuddy/internal/modules/routine/domain"
	"brightbuddy/internal/platform/kv"
)

func TestKVProgressStoreWritesFullRecord(t *testing.T) {
	t.Parallel()
	mem := kv.NewMemory()
	store := NewKVProgressStore(mem, nil)
	ctx := context.Background()

	err := store.Save(ctx, domain.Progress{Date: "2026-03-02", Items: []bool{false, true, true}, CompletedCount: 2, Total: 3})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := mem.Get(ctx, kv.KeyRoutineProgress)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := `{"date":"2026-03-02","items":[false,true,true],"completedCount":2,"total":3}`
	if raw != want {
		t.Fatalf("unexpected record\n got: %s\nwant: %s", raw, want)
	}
}

func TestKVProgressStoreReadsLegacyAndMalformed(t *testing.T) {
	t.Parallel()
	mem := kv.NewMemory()
	store := NewKVProgressStore(mem, nil)
	ctx := context.Background()

	if err := mem.Set(ctx, kv.KeyRoutineProgress, `{"date":"2026-03-02","items":[true,false],"completed":1,"total":2}`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load legacy: ok=%v err=%v", ok, err)
	}
	if got.CompletedCount != 1 || !reflect.DeepEqual(got.Items, []bool{true, false}) {
		t.Fatalf("unexpected legacy progress %+v", got)
	}

	for _, raw := range []string{"{broken", `{"date":"2026-03-02"}`, "null"} {
		if err := mem.Set(ctx, kv.KeyRoutineProgress, raw); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, ok, err := store.Load(ctx); ok || err != nil {
			t.Fatalf("expected %q treated as miss, got ok=%v err=%v", raw, ok, err)
		}
	}
}

func TestKVDefinitionStoreRoundTrip(t *testing.T) {
	t.Parallel()
	mem := kv.NewMemory()
	store := NewKVDefinitionStore(mem, nil)
	ctx := context.Background()

	if _, ok, err := store.Load(ctx); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := store.Save(ctx, domain.Definition{"Feed the cat", "Brush Teeth"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := mem.Get(ctx, kv.KeyRoutineItems)
	if raw != `["Feed the cat","Brush Teeth"]` {
		t.Fatalf("unexpected stored json %s", raw)
	}
	got, ok, err := store.Load(ctx)
	if err != nil || !ok || !reflect.DeepEqual(got, domain.Definition{"Feed the cat", "Brush Teeth"}) {
		t.Fatalf("unexpected load %v %v %v", got, ok, err)
	}
	if err := mem.Set(ctx, kv.KeyRoutineItems, "[1,2"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok, err := store.Load(ctx); ok || err != nil {
		t.Fatalf("expected malformed treated as miss, got ok=%v err=%v", ok, err)
	}
}

func TestYAMLCodecRoundTripAndValidation(t *testing.T) {
	t.Parallel()
	codec := NewYAMLCodec()
	data, err := codec.Encode(domain.Definition{"Brush Teeth", "Get Dressed"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := "version: 1\ntasks:\n  - Brush Teeth\n  - Get Dressed\n"
	if string(data) != want {
		t.Fatalf("unexpected yaml\n got: %q\nwant: %q", data, want)
	}
	got, err := codec.Decode([]byte("tasks:\n  - '  Read a book '\n"))
	if err != nil || !reflect.DeepEqual(got, domain.Definition{"Read a book"}) {
		t.Fatalf("unexpected decode %v %v", got, err)
	}
	if _, err := codec.Decode([]byte("tasks:\n  - ''\n")); err == nil {
		t.Fatalf("expected empty label rejected")
	}
	if _, err := codec.Decode([]byte("version: 9\ntasks: []\n")); err == nil {
		t.Fatalf("expected newer version rejected")
	}
	if _, err := codec.Decode([]byte("name: x\n")); err == nil {
		t.Fatalf("expected missing tasks rejected")
	}
}
