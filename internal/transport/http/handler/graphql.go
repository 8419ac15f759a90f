package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"

	"github.com/BaseMax/travel-planner-graphql/internal/auth"
	"github.com/BaseMax/travel-planner-graphql/internal/metrics"
)

// GraphQLHandler serves the whole schema on one endpoint. Queries and
// mutations answer with a single JSON body; subscription documents are
// streamed as Server-Sent Events until the client disconnects.
type GraphQLHandler struct {
	schema graphql.Schema
	logger *slog.Logger
}

func NewGraphQLHandler(schema graphql.Schema, logger *slog.Logger) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, logger: logger.With("component", "graphql_handler")}
}

type graphqlRequest struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// POST /graphql
func (h *GraphQLHandler) Serve(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The authorization header carries the raw signed token; resolvers
	// that require authentication verify it from the context.
	ctx := auth.ContextWithToken(c.Request.Context(), c.GetHeader("Authorization"))

	params := graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	}

	opType, opName := operationInfo(req.Query, req.OperationName)
	start := time.Now()

	if opType == ast.OperationTypeSubscription {
		metrics.GraphQLOperationsTotal.WithLabelValues(opType, opName).Inc()
		h.serveSubscription(c, params)
		return
	}

	result := graphql.Do(params)

	metrics.GraphQLOperationsTotal.WithLabelValues(opType, opName).Inc()
	metrics.GraphQLOperationDuration.WithLabelValues(opType, opName).Observe(time.Since(start).Seconds())
	if len(result.Errors) > 0 {
		metrics.GraphQLErrorsTotal.WithLabelValues(opType, opName).Inc()
	}

	// Application-level failures still answer 200; the errors array is
	// the only error channel.
	c.JSON(http.StatusOK, result)
}

func (h *GraphQLHandler) serveSubscription(c *gin.Context, params graphql.Params) {
	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	ctx, cancel := context.WithCancel(params.Context)
	defer cancel()
	params.Context = ctx

	results := graphql.Subscribe(params)

	// Initial comment establishes the stream before any event arrives.
	_, _ = w.Write([]byte(": stream started\n\n"))
	flusher.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case result, open := <-results:
			if !open {
				return
			}
			payload, err := json.Marshal(result)
			if err != nil {
				h.logger.Error("marshal subscription result", "error", err)
				continue
			}
			_, _ = w.Write([]byte("data: "))
			_, _ = w.Write(payload)
			_, _ = w.Write([]byte("\n\n"))
			flusher.Flush()
		}
	}
}

// operationInfo extracts the operation type and name for routing and
// metric labels. Parse failures fall back to "query"; graphql.Do will
// report the real syntax error to the client.
func operationInfo(query, operationName string) (opType, opName string) {
	doc, err := parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{Body: []byte(query)}),
	})
	if err != nil {
		return ast.OperationTypeQuery, ""
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		name := ""
		if op.Name != nil {
			name = op.Name.Value
		}
		if operationName == "" || name == operationName {
			return op.Operation, name
		}
	}
	return ast.OperationTypeQuery, ""
}
