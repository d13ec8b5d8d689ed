package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	documentURI     = "album://document"
	sectionTemplate = "album://sections/{name}"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerDocumentResource(srv, svc)
	registerSectionTemplate(srv, svc)
}

func registerDocumentResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		documentURI,
		"Album",
		mcp.WithResourceDescription("The whole album: sections and items."),
		mcp.WithMIMEType("application/json"),
	)
	srv.AddResource(resource, documentHandler(svc))
}

func documentHandler(svc *Service) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := svc.Export(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func registerSectionTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		sectionTemplate,
		"Section Items",
		mcp.WithTemplateDescription("Items shown for a section, in display order."),
		mcp.WithTemplateMIMEType("application/json"),
	)
	srv.AddResourceTemplate(template, sectionHandler(svc))
}

func sectionHandler(svc *Service) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := argument(request.Params.Arguments, "name")
		if name == "" {
			return nil, fmt.Errorf("section name is required")
		}

		items, err := svc.ListItems(ctx, name, "")
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"section": name,
			"count":   len(items),
			"items":   items,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	}
}

// argument reads a template variable, which arrives either as a string or
// as a single-element list.
func argument(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	case []any:
		if len(v) > 0 {
			s, _ := v[0].(string)
			return s
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
