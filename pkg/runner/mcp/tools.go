package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/party/pkg/app"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListPlansTool(srv, svc)
	registerGetChecklistTool(srv, svc)
	registerGenerateChecklistTool(srv, svc)
	registerToggleTool(srv, "toggle_completed", "Toggle whether a checklist item is done. Excluded items are left unchanged.", svc.ToggleCompleted)
	registerToggleTool(srv, "toggle_excluded", "Toggle whether a checklist item is excluded from progress and budget.", svc.ToggleExcluded)
	registerGetBudgetTool(srv, svc)
	registerExportReportTool(srv, svc)
}

func planArg() mcp.ToolOption {
	return mcp.WithString("plan",
		mcp.Required(),
		mcp.Description("Plan name, as shown by list_plans."),
	)
}

func registerListPlansTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_plans",
		mcp.WithDescription("List stored party plans with their progress."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		plans, err := svc.ListPlans(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"plans": plans,
			"count": len(plans),
		})
	})
}

func registerGetChecklistTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_checklist",
		mcp.WithDescription("Fetch the zone checklist of a plan, with item keys and states."),
		planArg(),
		mcp.WithBoolean("include_excluded",
			mcp.Description("Also list excluded items."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("plan")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Checklist(ctx, name, request.GetBool("include_excluded", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGenerateChecklistTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"generate_checklist",
		mcp.WithDescription("Generate a fresh checklist for a plan. Flags on items that survive regeneration are kept. Optional party arguments replace the stored ones first."),
		planArg(),
		mcp.WithString("theme", mcp.Description("Party theme, e.g. Dinosaur.")),
		mcp.WithNumber("age", mcp.Description("Age the child is turning.")),
		mcp.WithString("venue", mcp.Description("Venue type: home, park, hall...")),
		mcp.WithString("budget", mcp.Description("Overall budget, e.g. $300-500.")),
		mcp.WithNumber("guests", mcp.Description("Number of guests.")),
		mcp.WithString("activities", mcp.Description("Comma separated activities; replaces the stored list.")),
		mcp.WithBoolean("hire_character", mcp.Description("Plan to hire a character or entertainer.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("plan")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Generate(ctx, name, paramsUpdate(request))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

// paramsUpdate collects the party arguments present in the request.
func paramsUpdate(request mcp.CallToolRequest) ParamsUpdate {
	args := request.GetArguments()
	has := func(key string) bool {
		_, ok := args[key]
		return ok
	}
	str := func(key string) *string {
		v := request.GetString(key, "")
		return &v
	}
	num := func(key string) *int {
		v := request.GetInt(key, 0)
		return &v
	}

	var u ParamsUpdate
	if has("theme") {
		u.Theme = str("theme")
	}
	if has("age") {
		u.Age = num("age")
	}
	if has("venue") {
		u.Venue = str("venue")
	}
	if has("budget") {
		u.Budget = str("budget")
	}
	if has("guests") {
		u.Guests = num("guests")
	}
	if has("activities") {
		u.Activities = str("activities")
	}
	if has("hire_character") {
		v := request.GetBool("hire_character", false)
		u.HireCharacter = &v
	}
	return u
}

func registerToggleTool(srv *server.MCPServer, name, description string, toggle func(context.Context, string, string) (app.ToggleResult, error)) {
	tool := mcp.NewTool(
		name,
		mcp.WithDescription(description),
		planArg(),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Item key such as checklist-3 or arrival-0."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		plan, err := request.RequireString("plan")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		key, err := request.RequireString("key")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := toggle(ctx, plan, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerGetBudgetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_budget",
		mcp.WithDescription("Sum the estimated cost of the active items of a plan, by category."),
		planArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("plan")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		b, err := svc.Budget(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(b)
	})
}

func registerExportReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"export_report",
		mcp.WithDescription("Render the plain-text checklist report of a plan."),
		planArg(),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("plan")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		exp, err := svc.Export(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(exp.Content), nil
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
