package ocr

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/internal/trace"
	"github.com/relicscope/platform/pkg/pb"
)

// GRPCClient talks to an external vision service over gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	vision pb.VisionServiceClient
}

// NewGRPC connects to the vision service at addr.
func NewGRPC(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(trace.UnaryClientInterceptor()),
	)
	if err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_OCR_INIT_FAILED, "dial vision service")
	}

	return &GRPCClient{
		conn:   conn,
		vision: pb.NewVisionServiceClient(conn),
	}, nil
}

// Recognize sends an encoded image for text extraction.
func (c *GRPCClient) Recognize(ctx context.Context, imageData []byte) (string, float64, error) {
	resp, err := c.vision.Recognize(ctx, &pb.RecognizeRequest{
		ImageData: imageData,
		Format:    "png",
	})
	if err != nil {
		return "", 0, errors.FromGRPCError(err)
	}
	return resp.Text, float64(resp.Confidence), nil
}

// Close closes the underlying connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
