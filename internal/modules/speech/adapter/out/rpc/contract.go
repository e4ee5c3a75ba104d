package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "speech"
	serviceName       = "brightbuddy.speech.v1.Speech"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodSay         = "/" + serviceName + "/Say"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "BRIGHTBUDDY_SPEECH_PLUGIN",
	MagicCookieValue: "brightbuddy",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Voices  []string `json:"voices"`
}

type SayRequest struct {
	Text  string  `json:"text"`
	Rate  float64 `json:"rate"`
	Pitch float64 `json:"pitch"`
}

type SayResponse struct {
	Engine string `json:"engine"`
}

type SpeechServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Say(ctx context.Context, in *SayRequest) (*SayResponse, error)
}

type SpeechClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Say(ctx context.Context, in *SayRequest) (*SayResponse, error)
}

type speechClient struct {
	conn *grpc.ClientConn
}

func NewSpeechClient(conn *grpc.ClientConn) SpeechClient {
	return &speechClient{conn: conn}
}

func (c *speechClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *speechClient) Say(ctx context.Context, in *SayRequest) (*SayResponse, error) {
	out := &SayResponse{}
	if err := c.conn.Invoke(ctx, methodSay, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func unary[Req any](fullMethod string, call func(context.Context, *Req) (any, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*Req)
			if !ok {
				return nil, fmt.Errorf("invalid request type")
			}
			return call(ctx, typed)
		}
		return interceptor(ctx, in, info, handler)
	}
}

func RegisterSpeechServer(server grpc.ServiceRegistrar, impl SpeechServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*SpeechServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: unary(methodGetMetadata, func(ctx context.Context, in *Empty) (any, error) {
					return impl.GetMetadata(ctx, in)
				}),
			},
			{
				MethodName: "Say",
				Handler: unary(methodSay, func(ctx context.Context, in *SayRequest) (any, error) {
					return impl.Say(ctx, in)
				}),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "brightbuddy/speech/v1",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl SpeechServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterSpeechServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewSpeechClient(conn), nil
}

func PluginMap(impl SpeechServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
