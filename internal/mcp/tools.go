package mcp

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/FerozaC/shukuma-wep-app-project/internal/catalog"
	"github.com/FerozaC/shukuma-wep-app-project/internal/deck"
	"github.com/FerozaC/shukuma-wep-app-project/internal/models"
)

// --- Tool definitions ---

var toolGetUserStats = mcp.NewTool("get_user_stats",
	mcp.WithDescription("Get a user's current streak, lifetime card/rep totals, last workout date, and per-day card counts for the trailing week."),
	mcp.WithString("email", mcp.Required(), mcp.Description("User's email address")),
)

var toolGetSessionHistory = mcp.NewTool("get_session_history",
	mcp.WithDescription("List a user's completed workout sessions, newest first. Each entry includes cards completed, total time, and the ordered exercise names."),
	mcp.WithString("email", mcp.Required(), mcp.Description("User's email address")),
	mcp.WithNumber("limit", mcp.Description("Maximum sessions to return. Defaults to 20.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise card catalog with difficulty levels and muscle groups."),
	mcp.WithString("level", mcp.Description("Filter by difficulty level"), mcp.Enum("Easy", "Medium", "Hard")),
)

var toolGenerateDeck = mcp.NewTool("generate_deck",
	mcp.WithDescription("Shuffle the exercise catalog and assemble a workout deck with rest breaks interleaved (short break after every 2nd exercise, long break after every 4th)."),
	mcp.WithNumber("count", mcp.Description("Number of exercise cards to draw. Defaults to the full catalog.")),
	mcp.WithNumber("seed", mcp.Description("Random seed for a reproducible shuffle.")),
)

// --- Tool handlers ---

func (h *handlers) getUserStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError("email parameter is required"), nil
	}

	user, err := h.ds.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		h.log.Error("mcp get_user_stats", "error", err)
		return mcp.NewToolResultError("user lookup failed: " + err.Error()), nil
	}

	stats, err := h.ds.GetUserStats(ctx, user.ID)
	if err != nil {
		h.log.Error("mcp get_user_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError("email parameter is required"), nil
	}
	limit := req.GetInt("limit", 20)

	user, err := h.ds.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		h.log.Error("mcp get_session_history", "error", err)
		return mcp.NewToolResultError("user lookup failed: " + err.Error()), nil
	}

	sessions, err := h.ds.QuerySessions(ctx, user.ID)
	if err != nil {
		h.log.Error("mcp get_session_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.catalogOrDefault(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if level := req.GetString("level", ""); level != "" {
		filtered := exercises[:0:0]
		for _, e := range exercises {
			if string(e.Level) == level {
				filtered = append(filtered, e)
			}
		}
		exercises = filtered
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generateDeck(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.catalogOrDefault(ctx)
	if err != nil {
		h.log.Error("mcp generate_deck", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	r := rand.New(rand.NewSource(int64(req.GetInt("seed", int(rand.Int63())))))
	drawn := deck.Draw(exercises, req.GetInt("count", 0), r)

	result, err := mcp.NewToolResultJSON(deck.Assemble(drawn))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exercises, err := h.catalogOrDefault(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, exercises)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
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

func (h *handlers) catalogOrDefault(ctx context.Context) ([]models.Exercise, error) {
	exercises, err := h.ds.QueryExercises(ctx)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		exercises = catalog.Default()
	}
	return exercises, nil
}
