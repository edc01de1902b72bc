// Package subwayctl implements the subway operator CLI.
package subwayctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	entrypoint "github.com/louisbranch/subway/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/subway/internal/platform/grpc"
	"github.com/louisbranch/subway/internal/platform/timeouts"
	grpcapi "github.com/louisbranch/subway/internal/services/subway/api/grpc/subway"
	"github.com/spf13/cobra"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Config holds subwayctl configuration.
type Config struct {
	Addr string `env:"SUBWAY_ADDR" envDefault:"localhost:8095"`
	Lang string `env:"SUBWAY_LANG"`
}

// ParseConfig reads Config from the environment. Flags are bound by the
// command tree.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Dialer opens a connection to the subway server.
type Dialer func(ctx context.Context, addr string) (*grpc.ClientConn, error)

// DialHealthy waits for the subway service to report SERVING.
func DialHealthy(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	return platformgrpc.DialWithHealth(ctx, addr, subwayv1.SubwayService_ServiceDesc.ServiceName, timeouts.GRPCDial, nil)
}

// Run executes args against the server described by cfg.
func Run(ctx context.Context, cfg Config, args []string, stdout, stderr io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSubwayCtl, func(ctx context.Context) error {
		return Execute(ctx, cfg, DialHealthy, args, stdout, stderr)
	})
}

// Execute runs one command line and closes the connection it dialed, whether
// or not the command succeeded.
func Execute(ctx context.Context, cfg Config, dial Dialer, args []string, stdout, stderr io.Writer) (err error) {
	s := &session{cfg: cfg, dial: dial}
	defer func() {
		if closeErr := s.close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close connection: %w", closeErr)
		}
	}()

	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// session holds the lazily dialed client shared by one command run.
type session struct {
	cfg    Config
	dial   Dialer
	conn   *grpc.ClientConn
	client subwayv1.SubwayServiceClient
}

func (s *session) subway(ctx context.Context) (subwayv1.SubwayServiceClient, error) {
	if s.client != nil {
		return s.client, nil
	}
	addr := strings.TrimSpace(s.cfg.Addr)
	if addr == "" {
		return nil, errors.New("server address is required")
	}
	conn, err := s.dial(ctx, addr)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) && dialErr.Stage == platformgrpc.DialStageHealth {
			return nil, fmt.Errorf("subway server at %s is not serving: %w", addr, err)
		}
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	s.conn = conn
	s.client = subwayv1.NewSubwayServiceClient(conn)
	return s.client, nil
}

// requestContext bounds one call and forwards the preferred locale.
func (s *session) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	if lang := strings.TrimSpace(s.cfg.Lang); lang != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, grpcapi.LocaleHeader, lang)
	}
	return ctx, cancel
}

func (s *session) close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.client = nil
	return err
}

// newRootCommand builds the subwayctl command tree over s.
func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "subwayctl",
		Short:         "Manage subway stations, lines, and sections",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&s.cfg.Addr, "addr", s.cfg.Addr, "subway gRPC server address")
	root.PersistentFlags().StringVar(&s.cfg.Lang, "lang", s.cfg.Lang, "preferred language for error messages (en-US, ko-KR)")

	root.AddCommand(stationsCmd(s), linesCmd(s), sectionsCmd(s), seedCmd(s))
	return root
}

// describeError prefers the server's localized message.
func describeError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, detail := range st.Details() {
		if msg, ok := detail.(*errdetails.LocalizedMessage); ok && msg.GetMessage() != "" {
			return fmt.Errorf("%s (%s)", msg.GetMessage(), st.Code())
		}
	}
	return fmt.Errorf("%s (%s)", st.Message(), st.Code())
}
