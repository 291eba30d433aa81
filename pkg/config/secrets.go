package config

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// fetchSecret reads the latest version of a Secret Manager secret. name may be
// a bare secret id (resolved against project) or a full resource name.
func fetchSecret(ctx context.Context, project, name string) (string, error) {
	resource, err := secretResourceName(project, name)
	if err != nil {
		return "", err
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("create secret manager client: %w", err)
	}
	defer func() { _ = client.Close() }()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: resource,
	})
	if err != nil {
		return "", fmt.Errorf("access %s: %w", resource, err)
	}

	return strings.TrimSpace(string(resp.GetPayload().GetData())), nil
}

func secretResourceName(project, name string) (string, error) {
	if strings.HasPrefix(name, "projects/") {
		if !strings.Contains(name, "/versions/") {
			name += "/versions/latest"
		}
		return name, nil
	}
	if project == "" {
		return "", fmt.Errorf("GOOGLE_CLOUD_PROJECT is required to resolve secret %q", name)
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, name), nil
}
