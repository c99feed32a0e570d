package api

import (
	"net/http"

	gin "github.com/gin-gonic/gin"
	agent "github.com/inference-gateway/groq-mcp-client/agent"
	config "github.com/inference-gateway/groq-mcp-client/config"
	l "github.com/inference-gateway/groq-mcp-client/logger"
	providers "github.com/inference-gateway/groq-mcp-client/providers"
)

type Router interface {
	NotFoundHandler(c *gin.Context)
	HealthcheckHandler(c *gin.Context)
	ListToolsHandler(c *gin.Context)
	ModelHandler(c *gin.Context)
}

type RouterImpl struct {
	cfg    config.Config
	logger l.Logger
	agent  agent.Agent
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ResponseJSON struct {
	Message string `json:"message"`
}

type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	InputSchema interface{} `json:"input_schema,omitempty"`
}

type ListToolsResponse struct {
	Tools []Tool `json:"tools"`
}

type ModelResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

func NewRouter(cfg config.Config, logger l.Logger, agent agent.Agent) Router {
	return &RouterImpl{
		cfg,
		logger,
		agent,
	}
}

// NewEngine registers the operational routes. A nil metrics handler leaves
// /metrics unrouted.
func NewEngine(router Router, metrics http.Handler, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middlewares...)

	r.GET("/health", router.HealthcheckHandler)
	r.GET("/tools", router.ListToolsHandler)
	r.GET("/model", router.ModelHandler)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}
	r.NoRoute(router.NotFoundHandler)

	return r
}

func (router *RouterImpl) NotFoundHandler(c *gin.Context) {
	router.logger.Error("requested route is not found", nil, "path", c.Request.URL.Path)
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Requested route is not found"})
}

func (router *RouterImpl) HealthcheckHandler(c *gin.Context) {
	router.logger.Debug("healthcheck")
	c.JSON(http.StatusOK, ResponseJSON{Message: "OK"})
}

func (router *RouterImpl) ListToolsHandler(c *gin.Context) {
	descriptors, err := router.agent.Tools(c.Request.Context())
	if err != nil {
		router.logger.Error("failed to list tools", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to list tools from the MCP server"})
		return
	}

	response := ListToolsResponse{Tools: make([]Tool, 0, len(descriptors))}
	for _, d := range descriptors {
		response.Tools = append(response.Tools, Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema,
		})
	}
	c.JSON(http.StatusOK, response)
}

func (router *RouterImpl) ModelHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ModelResponse{
		Provider: providers.GroqID,
		Model:    router.agent.Model(),
	})
}
