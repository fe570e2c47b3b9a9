package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/weeklog/pkg/entry"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerLogActivityTool(srv, svc)
	registerConfirmActivityTool(srv, svc)
	registerRejectActivityTool(srv, svc)
	registerDeleteActivityTool(srv, svc)
	registerSetMoodTool(srv, svc)
	registerGetDayTool(srv, svc)
	registerGetWeekTool(srv, svc)
	registerListPendingTool(srv, svc)
	registerSearchActivitiesTool(srv, svc)
}

func registerLogActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_activity",
		mcp.WithDescription("Record an activity at a week/day/hour cell. Logging over an incomplete plan stores the activity as its replacement."),
		mcp.WithNumber("week",
			mcp.Description("Week offset from the current week; negative is past, positive is future. Default 0."),
		),
		mcp.WithNumber("day",
			mcp.Required(),
			mcp.Description("Day of the week, 0-6 starting Monday."),
			mcp.Min(0), mcp.Max(6),
		),
		mcp.WithNumber("slot",
			mcp.Required(),
			mcp.Description("Hour of the day, 0-23."),
			mcp.Min(0), mcp.Max(23),
		),
		mcp.WithString("activity",
			mcp.Required(),
			mcp.Description("What was done or is planned."),
		),
		mcp.WithNumber("pleasure",
			mcp.Description("Optional pleasure rating, 1-10."),
			mcp.Min(1), mcp.Max(10),
		),
		mcp.WithNumber("mastery",
			mcp.Description("Optional mastery rating, 1-10."),
			mcp.Min(1), mcp.Max(10),
		),
		mcp.WithString("color",
			mcp.Description("Display color tag."),
			mcp.Enum("white", "gray", "red", "orange", "yellow", "green", "blue", "purple"),
		),
		mcp.WithString("intent",
			mcp.Description("Save intent: new entry, in-place edit, or replacement for an incomplete plan."),
			mcp.Enum("new", "edit", "instead"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Week     int    `json:"week"`
			Day      int    `json:"day"`
			Slot     int    `json:"slot"`
			Activity string `json:"activity"`
			Pleasure int    `json:"pleasure"`
			Mastery  int    `json:"mastery"`
			Color    string `json:"color"`
			Intent   string `json:"intent"`
		}

		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		intent, err := ParseIntent(args.Intent)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.LogActivity(ctx, LogActivityOptions{
			Week:     args.Week,
			Day:      args.Day,
			Slot:     args.Slot,
			Activity: args.Activity,
			Pleasure: entry.Rating(args.Pleasure),
			Mastery:  entry.Rating(args.Mastery),
			Color:    entry.Color(args.Color),
			Intent:   intent,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return toJSONResult(dto)
	})
}

func registerConfirmActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"confirm_activity",
		mcp.WithDescription("Confirm that a planned activity awaiting review happened. Both ratings are required."),
		mcp.WithNumber("week", mcp.Description("Week offset, default 0.")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the week, 0-6 starting Monday."), mcp.Min(0), mcp.Max(6)),
		mcp.WithNumber("slot", mcp.Required(), mcp.Description("Hour of the day, 0-23."), mcp.Min(0), mcp.Max(23)),
		mcp.WithNumber("pleasure", mcp.Required(), mcp.Description("Pleasure rating, 1-10."), mcp.Min(1), mcp.Max(10)),
		mcp.WithNumber("mastery", mcp.Required(), mcp.Description("Mastery rating, 1-10."), mcp.Min(1), mcp.Max(10)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Week     int `json:"week"`
			Day      int `json:"day"`
			Slot     int `json:"slot"`
			Pleasure int `json:"pleasure"`
			Mastery  int `json:"mastery"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.ConfirmActivity(ctx, args.Week, args.Day, args.Slot,
			entry.Rating(args.Pleasure), entry.Rating(args.Mastery))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRejectActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reject_activity",
		mcp.WithDescription("Mark a planned activity awaiting review as not done. The plan is kept; a later log at the same cell becomes its replacement."),
		mcp.WithNumber("week", mcp.Description("Week offset, default 0.")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the week, 0-6 starting Monday."), mcp.Min(0), mcp.Max(6)),
		mcp.WithNumber("slot", mcp.Required(), mcp.Description("Hour of the day, 0-23."), mcp.Min(0), mcp.Max(23)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Week int `json:"week"`
			Day  int `json:"day"`
			Slot int `json:"slot"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.RejectActivity(ctx, args.Week, args.Day, args.Slot)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteActivityTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_activity",
		mcp.WithDescription("Delete the whole record at a cell, replacement included."),
		mcp.WithNumber("week", mcp.Description("Week offset, default 0.")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the week, 0-6 starting Monday."), mcp.Min(0), mcp.Max(6)),
		mcp.WithNumber("slot", mcp.Required(), mcp.Description("Hour of the day, 0-23."), mcp.Min(0), mcp.Max(23)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Week int `json:"week"`
			Day  int `json:"day"`
			Slot int `json:"slot"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		if err := svc.DeleteActivity(ctx, args.Week, args.Day, args.Slot); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": true})
	})
}

func registerSetMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_mood",
		mcp.WithDescription("Record the single daily mood rating; saving again overwrites."),
		mcp.WithNumber("week", mcp.Description("Week offset, default 0.")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the week, 0-6 starting Monday."), mcp.Min(0), mcp.Max(6)),
		mcp.WithNumber("rating", mcp.Required(), mcp.Description("Mood rating, 1-10."), mcp.Min(1), mcp.Max(10)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Week   int `json:"week"`
			Day    int `json:"day"`
			Rating int `json:"rating"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.SetMood(ctx, args.Week, args.Day, entry.Mood(args.Rating))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Fetch one day's activities and mood."),
		mcp.WithNumber("week", mcp.Description("Week offset, default 0.")),
		mcp.WithNumber("day", mcp.Required(), mcp.Description("Day of the week, 0-6 starting Monday."), mcp.Min(0), mcp.Max(6)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Week int `json:"week"`
			Day  int `json:"day"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		summary, err := svc.GetDay(ctx, args.Week, args.Day, time.Now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func registerGetWeekTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_week",
		mcp.WithDescription("Fetch a whole week of activities and moods, skipping empty days."),
		mcp.WithNumber("week", mcp.Description("Week offset, default 0.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		week := request.GetInt("week", 0)

		days, err := svc.GetWeek(ctx, week, time.Now())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"week":  week,
			"days":  days,
			"count": len(days),
		})
	})
}

func registerListPendingTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_pending",
		mcp.WithDescription("List every activity whose hour has passed and is awaiting review."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pending, err := svc.ListPending(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"pending": pending,
			"count":   len(pending),
		})
	})
}

func registerSearchActivitiesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_activities",
		mcp.WithDescription("Search activities by substring match across activity and replacement text."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of activities to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.SearchActivities(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
