package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/aws/aws-lambda-go/events"

	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/handler"
)

// Function names accepted in LAMBDA_FUNCTION. They match the HTTP paths.
const (
	FunctionAddVisitor      = "add-visitor"
	FunctionGetVisitorCount = "get-visitor-count"
	FunctionSendMessage     = "send-message"
)

var ErrUnknownFunction = errors.New("unknown lambda function")

// Handler serves API Gateway proxy events. A Handler bound to a function
// answers every event with that operation; an unbound one routes on the
// last element of the request path, so stage prefixes are ignored.
type Handler struct {
	ops      *handler.Operations
	function string
}

func NewHandler(ops *handler.Operations, function string) (*Handler, error) {
	switch function {
	case "", FunctionAddVisitor, FunctionGetVisitorCount, FunctionSendMessage:
		return &Handler{ops: ops, function: function}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, function)
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.HTTPMethod == http.MethodOptions {
		return render(handler.Response{StatusCode: http.StatusNoContent}), nil
	}

	function := h.function
	if function == "" {
		function = path.Base(req.Path)
	}

	switch function {
	case FunctionAddVisitor:
		return render(h.ops.AddVisitor(ctx, req.RequestContext.Identity.SourceIP)), nil
	case FunctionGetVisitorCount:
		return render(h.ops.GetVisitorCount(ctx)), nil
	case FunctionSendMessage:
		body, err := requestBody(req)
		if err != nil {
			return render(handler.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       handler.MessageBody{Message: "Failed to send email due to " + err.Error()},
			}), nil
		}
		return render(h.ops.SendMessage(ctx, body)), nil
	}
	return render(handler.Response{
		StatusCode: http.StatusNotFound,
		Body:       handler.MessageBody{Message: "Not Found"},
	}), nil
}

func requestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func render(resp handler.Response) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(handler.CORSHeaders)+1)
	for k, v := range handler.CORSHeaders {
		headers[k] = v
	}

	out := events.APIGatewayProxyResponse{StatusCode: resp.StatusCode, Headers: headers}
	if resp.Body == nil {
		return out
	}

	body, err := resp.Encode()
	if err != nil {
		out.StatusCode = http.StatusInternalServerError
		body, _ = json.Marshal(handler.MessageBody{Message: err.Error()})
	}
	headers["Content-Type"] = "application/json"
	out.Body = string(body)
	return out
}
