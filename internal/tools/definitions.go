package tools

import "github.com/mark3labs/mcp-go/mcp"

var idItems = map[string]any{"type": "number"}

var fetchPostsTool = mcp.NewTool("fetch_posts",
	mcp.WithDescription("Fetch posts from wordpress blog"),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithNumber("page",
		mcp.Description("Page number to fetch"),
		mcp.Min(1),
	),
	mcp.WithNumber("perPage",
		mcp.Description("Number of posts per page"),
		mcp.Min(1),
		mcp.Max(100),
	),
)

var fetchCategoriesTool = mcp.NewTool("fetch_categories",
	mcp.WithDescription("Fetches all categories from a wordpress blog"),
	mcp.WithReadOnlyHintAnnotation(true),
)

var fetchMediaTool = mcp.NewTool("fetch_media",
	mcp.WithDescription("Fetches all media from wordpress blog"),
	mcp.WithReadOnlyHintAnnotation(true),
)

var createPostTool = mcp.NewTool("create_post",
	mcp.WithDescription("Creates a new post in wordpress"),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Title of the post"),
	),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Content of the post"),
	),
	mcp.WithArray("categories",
		mcp.Description("Array of category IDs"),
		mcp.Items(idItems),
	),
	mcp.WithArray("tags",
		mcp.Description("Array of tag IDs"),
		mcp.Items(idItems),
	),
	mcp.WithString("slug",
		mcp.Description("Slug of the post"),
	),
	mcp.WithString("status",
		mcp.Description("Status of the post"),
		mcp.Enum("publish", "draft", "pending"),
	),
)

var createCategoryTool = mcp.NewTool("create_category",
	mcp.WithDescription("Creates a category in wordpress"),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Name of the category"),
	),
	mcp.WithString("description",
		mcp.Description("Description of the category"),
	),
	mcp.WithString("slug",
		mcp.Description("Slug of the category"),
	),
	mcp.WithNumber("parent",
		mcp.Description("ID of the parent category, 0 for none"),
		mcp.Min(0),
	),
)

var fetchTagsTool = mcp.NewTool("fetch_tags",
	mcp.WithDescription("Fetches all tags from a wordpress blog"),
	mcp.WithReadOnlyHintAnnotation(true),
)

var fetchUsersTool = mcp.NewTool("fetch_users",
	mcp.WithDescription("Fetches all users from a wordpress blog"),
	mcp.WithReadOnlyHintAnnotation(true),
)

var fetchCommentsTool = mcp.NewTool("fetch_comments",
	mcp.WithDescription("Fetches all comments from a wordpress blog"),
	mcp.WithReadOnlyHintAnnotation(true),
)

var getPostTool = mcp.NewTool("get_post",
	mcp.WithDescription("Fetches a single post by ID"),
	mcp.WithReadOnlyHintAnnotation(true),
	withID("Post ID"),
)

var getMediaTool = mcp.NewTool("get_media",
	mcp.WithDescription("Fetches a single media item by ID"),
	mcp.WithReadOnlyHintAnnotation(true),
	withID("Media ID"),
)

var getPageTool = mcp.NewTool("get_page",
	mcp.WithDescription("Fetches a single page by ID"),
	mcp.WithReadOnlyHintAnnotation(true),
	withID("Page ID"),
)

func withID(desc string) mcp.ToolOption {
	return mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description(desc),
		mcp.Min(1),
	)
}
