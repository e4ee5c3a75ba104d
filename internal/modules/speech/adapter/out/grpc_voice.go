package out

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	speechrpc "brightbuddy/internal/modules/speech/adapter/out/rpc"
	"brightbuddy/internal/modules/speech/domain"
	speechout "brightbuddy/internal/modules/speech/port/out"
	"brightbuddy/internal/platform/logging"
)

const defaultStartTimeout = 3 * time.Second

// PluginVoice speaks through an external speech plugin binary. The plugin process
// is started on first use and kept until Close.
type PluginVoice struct {
	binary string
	logger hclog.Logger

	mu     sync.Mutex
	client *plugin.Client
	speech speechrpc.SpeechClient
}

func NewPluginVoice(binary string, logger hclog.Logger) speechout.Voice {
	return &PluginVoice{binary: binary, logger: logging.OrNull(logger)}
}

func (v *PluginVoice) Say(ctx context.Context, utterance domain.Utterance) error {
	client, err := v.connect()
	if err != nil {
		return err
	}
	if _, err := client.Say(ctx, &speechrpc.SayRequest{Text: utterance.Text, Rate: utterance.Rate, Pitch: utterance.Pitch}); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("say %q: %w", utterance.Text, ctx.Err())
		}
		v.reset()
		return fmt.Errorf("say: %w", err)
	}
	return nil
}

// Metadata asks the plugin to describe itself; used to validate configuration.
func (v *PluginVoice) Metadata(ctx context.Context) (speechrpc.Metadata, error) {
	client, err := v.connect()
	if err != nil {
		return speechrpc.Metadata{}, err
	}
	meta, err := client.GetMetadata(ctx)
	if err != nil {
		return speechrpc.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return *meta, nil
}

func (v *PluginVoice) connect() (speechrpc.SpeechClient, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.speech != nil && !v.client.Exited() {
		return v.speech, nil
	}
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  speechrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          speechrpc.PluginMap(nil),
		Cmd:              exec.Command(v.binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           v.logger.Named("speech-plugin"),
	})
	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("start speech plugin: %w", err)
	}
	raw, err := rpcClient.Dispense(speechrpc.PluginMapKey)
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("dispense speech plugin: %w", err)
	}
	typed, ok := raw.(speechrpc.SpeechClient)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("speech plugin client type mismatch")
	}
	v.client, v.speech = client, typed
	return typed, nil
}

func (v *PluginVoice) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.client != nil {
		v.client.Kill()
	}
	v.client, v.speech = nil, nil
}

func (v *PluginVoice) Close() error {
	v.reset()
	return nil
}
