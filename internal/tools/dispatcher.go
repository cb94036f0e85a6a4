package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/wordpress-mcp-server/internal/models"
	"github.com/wordpress-mcp-server/internal/service"
	"github.com/wordpress-mcp-server/internal/validation"
)

const (
	ServerName    = "wordpress-mcp-server"
	ServerVersion = "1.0.0"
)

// Dispatcher turns tool calls into ContentGateway operations.
// It holds no per-call state.
type Dispatcher struct {
	gateway   service.ContentGateway
	validator *validation.Validator
	log       zerolog.Logger
}

// NewDispatcher creates a dispatcher over the given gateway
func NewDispatcher(gateway service.ContentGateway, v *validation.Validator, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		gateway:   gateway,
		validator: v,
		log:       log.With().Str("service", "tools").Logger(),
	}
}

// NewServer builds an MCP server with every tool registered
func NewServer(gateway service.ContentGateway, v *validation.Validator, log zerolog.Logger) *server.MCPServer {
	d := NewDispatcher(gateway, v, log)

	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithToolHandlerMiddleware(d.loggingMiddleware),
		server.WithToolHandlerMiddleware(d.recoveryMiddleware),
	)
	d.Register(s)

	return s
}

// Register adds every tool to s
func (d *Dispatcher) Register(s *server.MCPServer) {
	s.AddTool(fetchPostsTool, d.FetchPosts)
	s.AddTool(fetchCategoriesTool, d.FetchCategories)
	s.AddTool(fetchMediaTool, d.FetchMedia)
	s.AddTool(createPostTool, d.CreatePost)
	s.AddTool(createCategoryTool, d.CreateCategory)

	s.AddTool(fetchTagsTool, d.FetchTags)
	s.AddTool(fetchUsersTool, d.FetchUsers)
	s.AddTool(fetchCommentsTool, d.FetchComments)
	s.AddTool(getPostTool, d.GetPost)
	s.AddTool(getMediaTool, d.GetMedia)
	s.AddTool(getPageTool, d.GetPage)
}

// FetchPosts emits one text block per post summary
func (d *Dispatcher) FetchPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args FetchPostsArgs
	if res := d.bind(ctx, req, &args); res != nil {
		return res, nil
	}

	posts, err := d.gateway.FetchPosts(ctx, args.postQuery())
	if err != nil {
		return d.failure(ctx, req, "Error fetching posts", err), nil
	}

	content := make([]mcp.Content, 0, len(posts))
	for _, p := range posts {
		data, err := json.Marshal(models.Summarize(p))
		if err != nil {
			return d.failure(ctx, req, "Error fetching posts", err), nil
		}
		content = append(content, mcp.NewTextContent(string(data)))
	}

	return &mcp.CallToolResult{Content: content}, nil
}

func (d *Dispatcher) FetchCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := d.gateway.FetchCategories(ctx)
	return d.result(ctx, req, "Error fetching categories", categories, err), nil
}

func (d *Dispatcher) FetchMedia(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	media, err := d.gateway.FetchMedia(ctx)
	return d.result(ctx, req, "Error fetching media", media, err), nil
}

func (d *Dispatcher) FetchTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags, err := d.gateway.FetchTags(ctx)
	return d.result(ctx, req, "Error fetching tags", tags, err), nil
}

func (d *Dispatcher) FetchUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	users, err := d.gateway.FetchUsers(ctx)
	return d.result(ctx, req, "Error fetching users", users, err), nil
}

func (d *Dispatcher) FetchComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	comments, err := d.gateway.FetchComments(ctx)
	return d.result(ctx, req, "Error fetching comments", comments, err), nil
}

func (d *Dispatcher) CreatePost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args CreatePostArgs
	if res := d.bind(ctx, req, &args); res != nil {
		return res, nil
	}

	post, err := d.gateway.CreatePost(ctx, args.postInput())
	return d.result(ctx, req, "Error creating post", post, err), nil
}

func (d *Dispatcher) CreateCategory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args CreateCategoryArgs
	if res := d.bind(ctx, req, &args); res != nil {
		return res, nil
	}

	category, err := d.gateway.CreateCategory(ctx, args.categoryInput())
	return d.result(ctx, req, "Error creating category", category, err), nil
}

func (d *Dispatcher) GetPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args IDArgs
	if res := d.bind(ctx, req, &args); res != nil {
		return res, nil
	}

	post, err := d.gateway.GetPostByID(ctx, *args.ID)
	return d.result(ctx, req, "Error fetching post", post, err), nil
}

func (d *Dispatcher) GetMedia(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args IDArgs
	if res := d.bind(ctx, req, &args); res != nil {
		return res, nil
	}

	media, err := d.gateway.GetMedia(ctx, *args.ID)
	return d.result(ctx, req, "Error fetching media item", media, err), nil
}

func (d *Dispatcher) GetPage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args IDArgs
	if res := d.bind(ctx, req, &args); res != nil {
		return res, nil
	}

	page, err := d.gateway.GetPage(ctx, *args.ID)
	return d.result(ctx, req, "Error fetching page", page, err), nil
}

// bind decodes and validates the call arguments into target. A non-nil
// result is the failure envelope to return instead of dispatching.
func (d *Dispatcher) bind(ctx context.Context, req mcp.CallToolRequest, target any) *mcp.CallToolResult {
	err := d.validator.Bind(req.GetArguments(), target)
	if err == nil {
		return nil
	}

	d.logger(ctx).Warn().Err(err).Str("tool", req.Params.Name).Msg("Rejected tool arguments")

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return mcp.NewToolResultError(verrs.Error())
	}
	return mcp.NewToolResultError("invalid arguments")
}

// result wraps v as a single JSON text block, or err as the fixed failure message
func (d *Dispatcher) result(ctx context.Context, req mcp.CallToolRequest, failMsg string, v any, err error) *mcp.CallToolResult {
	if err != nil {
		return d.failure(ctx, req, failMsg, err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return d.failure(ctx, req, failMsg, err)
	}
	return mcp.NewToolResultText(string(data))
}

// failure logs and reports err; the caller only ever sees msg
func (d *Dispatcher) failure(ctx context.Context, req mcp.CallToolRequest, msg string, err error) *mcp.CallToolResult {
	event := d.logger(ctx).Error().Err(err).Str("tool", req.Params.Name)

	var gwErr *service.GatewayError
	if errors.As(err, &gwErr) {
		event = event.Str("op", gwErr.Op).Int("upstream_status", gwErr.Status).Str("upstream_code", gwErr.Code)
	}
	event.Msg(msg)

	captureError(ctx, req.Params.Name, err)

	return mcp.NewToolResultError(msg)
}
