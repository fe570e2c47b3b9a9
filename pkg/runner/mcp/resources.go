package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPendingResource(srv, svc)
	registerWeekTemplate(srv, svc)
	registerDayTemplate(srv, svc)
}

func registerPendingResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"weeklog://pending",
		"Pending Reviews",
		mcp.WithResourceDescription("Every activity whose hour has passed and is awaiting review."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		pending, err := svc.ListPending(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"pending": pending,
			"count":   len(pending),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerWeekTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"weeklog://weeks/{offset}",
		"Week Journal",
		mcp.WithTemplateDescription("One week of activities and moods; offset 0 is the current week."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		raw, _ := request.Params.Arguments["offset"].(string)
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("week offset must be an integer: %q", raw)
		}

		days, err := svc.GetWeek(ctx, offset, time.Now())
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"week":  offset,
			"days":  days,
			"count": len(days),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"weeklog://weeks/{offset}/days/{day}",
		"Day Journal",
		mcp.WithTemplateDescription("One day's activities and mood; day 0 is Monday."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		rawOffset, _ := request.Params.Arguments["offset"].(string)
		offset, err := strconv.Atoi(rawOffset)
		if err != nil {
			return nil, fmt.Errorf("week offset must be an integer: %q", rawOffset)
		}
		rawDay, _ := request.Params.Arguments["day"].(string)
		day, err := strconv.Atoi(rawDay)
		if err != nil {
			return nil, fmt.Errorf("day must be an integer: %q", rawDay)
		}

		summary, err := svc.GetDay(ctx, offset, day, time.Now())
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"day": summary,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
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
