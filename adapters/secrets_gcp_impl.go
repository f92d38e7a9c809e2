package adapters

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	f "github.com/soffa-projects/secrets-demo/core"
	"github.com/soffa-projects/secrets-demo/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GcpSecretSource struct {
	project string
	client  *secretmanager.Client
}

func NewGcpSecretSource(projectID string) *GcpSecretSource {
	return &GcpSecretSource{project: projectID}
}

// Init creates the Secret Manager client. A missing project id is a
// configuration gap, not a startup failure: the source stays usable and
// every read resolves to absent without touching the network.
func (s *GcpSecretSource) Init() error {
	if s.project == "" {
		log.Warn("[gcp] no project id configured, secrets will resolve to absent")
		return nil
	}
	client, err := secretmanager.NewClient(context.Background())
	if err != nil {
		log.Warn("[gcp] failed to create secretmanager client: %v", err)
		return nil
	}
	s.client = client
	log.Info("[gcp] secret source installed for project %s", s.project)
	return nil
}

func (s *GcpSecretSource) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *GcpSecretSource) Latest(ctx context.Context, name string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("[gcp] project id is not configured: %w", f.ErrSecretNotFound)
	}
	resp, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", s.project, name),
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", f.ErrSecretNotFound
		}
		return "", fmt.Errorf("[gcp] failed to access secret %s: %w", name, err)
	}
	return string(resp.GetPayload().GetData()), nil
}
