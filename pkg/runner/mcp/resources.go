package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerZonesResource(srv, svc)
	registerPlansResource(srv, svc)
}

func registerZonesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"party://zones",
		"Zones",
		mcp.WithResourceDescription("Party zones, their seeded items and the categories routed to each."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, svc.Zones())
	})
}

func registerPlansResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"party://plans",
		"Plans",
		mcp.WithResourceDescription("All stored party plans with progress."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		plans, err := svc.ListPlans(ctx)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"plans": plans,
			"count": len(plans),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
