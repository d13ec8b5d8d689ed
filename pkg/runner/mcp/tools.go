package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(listSectionsTool(), listSectionsHandler(svc))
	srv.AddTool(addSectionTool(), addSectionHandler(svc))
	srv.AddTool(deleteSectionTool(), deleteSectionHandler(svc))
	srv.AddTool(listItemsTool(), listItemsHandler(svc))
	srv.AddTool(getItemTool(), getItemHandler(svc))
	srv.AddTool(addItemTool(), addItemHandler(svc))
	srv.AddTool(deleteItemTool(), deleteItemHandler(svc))
	srv.AddTool(moveItemTool(), moveItemHandler(svc))
	srv.AddTool(exportAlbumTool(), exportAlbumHandler(svc))
}

func listSectionsTool() mcp.Tool {
	return mcp.NewTool(
		"list_sections",
		mcp.WithDescription("List album sections in display order with item counts. All counts every item."),
	)
}

func listSectionsHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sections, err := svc.ListSections(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"sections": sections,
			"count":    len(sections),
		})
	}
}

func addSectionTool() mcp.Tool {
	return mcp.NewTool(
		"add_section",
		mcp.WithDescription("Create a new section. Names are unique ignoring case."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the new section."),
		),
	)
}

func addSectionHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sec, err := svc.AddSection(ctx, name)
		return resultWithWarning(sec, err)
	}
}

func deleteSectionTool() mcp.Tool {
	return mcp.NewTool(
		"delete_section",
		mcp.WithDescription("Delete a section. Its items move to All. The All section can not be deleted."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Exact name of the section to delete."),
		),
	)
}

func deleteSectionHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		removed, err := svc.DeleteSection(ctx, name)
		return resultWithWarning(map[string]any{"name": name, "removed": removed}, err)
	}
}

func listItemsTool() mcp.Tool {
	return mcp.NewTool(
		"list_items",
		mcp.WithDescription("List the items shown for a section and search query, in display order."),
		mcp.WithString("section",
			mcp.Description("Section to show. Defaults to All."),
		),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text matched against titles and section names."),
		),
	)
}

func listItemsHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		section := request.GetString("section", media.AllSection)
		query := request.GetString("query", "")
		items, err := svc.ListItems(ctx, section, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"section": section,
			"query":   query,
			"count":   len(items),
			"items":   items,
		})
	}
}

func getItemTool() mcp.Tool {
	return mcp.NewTool(
		"get_item",
		mcp.WithDescription("Fetch one item by id, including the embed URL for videos."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier."),
		),
	)
}

func getItemHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ItemByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func addItemTool() mcp.Tool {
	return mcp.NewTool(
		"add_item",
		mcp.WithDescription("Add a photo or YouTube video to the end of the album."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Image URL, or a YouTube watch, youtu.be, shorts or embed URL."),
		),
		mcp.WithString("kind",
			mcp.Description("Item kind. Defaults to photo."),
			mcp.Enum("photo", "video"),
		),
		mcp.WithString("title",
			mcp.Description("Optional title."),
		),
		mcp.WithString("section",
			mcp.Description("Existing section to file the item under. Defaults to All."),
		),
	)
}

func addItemHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			URL     string `json:"url"`
			Kind    string `json:"kind"`
			Title   string `json:"title"`
			Section string `json:"section"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.AddItem(ctx, AddItemOptions{
			Kind:    args.Kind,
			Title:   args.Title,
			URL:     args.URL,
			Section: args.Section,
		})
		return resultWithWarning(dto, err)
	}
}

func deleteItemTool() mcp.Tool {
	return mcp.NewTool(
		"delete_item",
		mcp.WithDescription("Delete an item. Deleting an unknown id is not an error."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier."),
		),
	)
}

func deleteItemHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		removed, err := svc.DeleteItem(ctx, id)
		return resultWithWarning(map[string]any{"id": id, "removed": removed}, err)
	}
}

func moveItemTool() mcp.Tool {
	return mcp.NewTool(
		"move_item",
		mcp.WithDescription("Drop an item onto another within the list shown for a section and query. The visible list is renumbered."),
		mcp.WithString("drag_id",
			mcp.Required(),
			mcp.Description("Item being moved."),
		),
		mcp.WithString("target_id",
			mcp.Required(),
			mcp.Description("Item whose slot the moved item takes."),
		),
		mcp.WithString("section",
			mcp.Description("Section the list is shown for. Defaults to All."),
		),
		mcp.WithString("query",
			mcp.Description("Search query the list is shown for."),
		),
	)
}

func moveItemHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dragID, err := request.RequireString("drag_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		targetID, err := request.RequireString("target_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		section := request.GetString("section", media.AllSection)
		query := request.GetString("query", "")

		moved, items, err := svc.MoveItem(ctx, section, query, dragID, targetID)
		return resultWithWarning(map[string]any{
			"moved": moved,
			"items": items,
		}, err)
	}
}

func exportAlbumTool() mcp.Tool {
	return mcp.NewTool(
		"export_album",
		mcp.WithDescription("Return the whole album as the JSON document used by export and import."),
	)
}

func exportAlbumHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := svc.Export(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// resultWithWarning reports validation and other failures as tool errors. A
// failed save still returns the data, with the failure as a warning.
func resultWithWarning(data any, err error) (*mcp.CallToolResult, error) {
	if err == nil {
		return toJSONResult(data)
	}
	if app.IsPersistence(err) {
		return toJSONResult(map[string]any{
			"result":  data,
			"warning": err.Error(),
		})
	}
	return mcp.NewToolResultError(err.Error()), nil
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
