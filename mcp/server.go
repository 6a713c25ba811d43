package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumeinsight/backend/tools"
)

// ProtocolVersion is the MCP revision answered by initialize
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server exposes the resume tools to external AI agents over MCP JSON-RPC
type Server struct {
	registry *tools.ToolRegistry
	name     string
	version  string
}

// NewServer creates a new MCP server
func NewServer(registry *tools.ToolRegistry, name, version string) *Server {
	return &Server{
		registry: registry,
		name:     name,
		version:  version,
	}
}

// MCPRequest represents an incoming MCP JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an MCP response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents an MCP error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeResult answers the initialize handshake
type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      ServerInfo             `json:"serverInfo"`
}

// ServerInfo names this server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolsListResult represents the result of tools/list
type ToolsListResult struct {
	Tools []ToolDefinition `json:"tools"`
}

// ToolDefinition represents a tool definition for MCP
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolCallParams represents parameters for tools/call
type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult represents the result of tools/call
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ContentItem represents a content item in MCP
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RegisterRoutes registers MCP endpoints on the given router group
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/list", s.HandleToolsList)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
}

// HandleMCP handles MCP JSON-RPC requests
// @Summary MCP JSON-RPC endpoint
// @Description Handles initialize, tools/list and tools/call
// @Tags MCP
// @Accept json
// @Produce json
// @Param request body MCPRequest true "JSON-RPC request"
// @Success 200 {object} MCPResponse
// @Router /mcp [post]
func (s *Server) HandleMCP(c *gin.Context) {
	var req MCPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.sendError(c, nil, codeParseError, "Parse error", err.Error())
		return
	}

	switch req.Method {
	case "initialize":
		s.sendResult(c, req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
			ServerInfo:      ServerInfo{Name: s.name, Version: s.version},
		})
	case "ping":
		s.sendResult(c, req.ID, map[string]interface{}{})
	case "tools/list":
		s.sendResult(c, req.ID, s.toolsList())
	case "tools/call":
		var params ToolCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.sendError(c, req.ID, codeInvalidParams, "Invalid params", err.Error())
			return
		}
		s.sendResult(c, req.ID, s.callTool(c.Request.Context(), params))
	default:
		s.sendError(c, req.ID, codeMethodNotFound, "Method not found", req.Method)
	}
}

// HandleToolsList handles POST /mcp/tools/list
func (s *Server) HandleToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, s.toolsList())
}

// HandleToolsCall handles POST /mcp/tools/call
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params ToolCallParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, s.callTool(c.Request.Context(), params))
}

func (s *Server) toolsList() ToolsListResult {
	registered := s.registry.List()

	definitions := make([]ToolDefinition, 0, len(registered))
	for _, tool := range registered {
		definitions = append(definitions, ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}
	return ToolsListResult{Tools: definitions}
}

func (s *Server) callTool(ctx context.Context, params ToolCallParams) ToolCallResult {
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return ToolCallResult{
			Content: []ContentItem{{Type: "text", Text: err.Error()}},
			IsError: true,
		}
	}

	// a tool reports its own failures inside the result envelope
	var envelope tools.ToolResult
	isError := json.Unmarshal(result, &envelope) == nil && !envelope.Success

	return ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: string(result)}},
		IsError: isError,
	}
}

func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	tool, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	log.Printf("[MCP] Executing tool: %s", name)
	result, err := tool.Execute(ctx, args)
	if err != nil {
		log.Printf("[MCP] Tool %s error: %v", name, err)
		return nil, err
	}

	log.Printf("[MCP] Tool %s completed", name)
	return result, nil
}

func (s *Server) sendResult(c *gin.Context, id interface{}, result interface{}) {
	c.JSON(http.StatusOK, MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *Server) sendError(c *gin.Context, id interface{}, code int, message string, data interface{}) {
	c.JSON(http.StatusOK, MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}
