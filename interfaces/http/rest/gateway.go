package rest

import (
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// defaultStage is the HTTP API stage served without a path prefix
const defaultStage = "$default"

// GatewayRequest rewrites an API Gateway event so its path matches the
// router. A movieId path parameter wins; otherwise a named stage prefix
// such as /dev is stripped.
func GatewayRequest(req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPRequest {
	path := req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}

	if movieID, ok := req.PathParameters["movieId"]; ok {
		path = "/movies/" + url.PathEscape(movieID)
	} else if stage := req.RequestContext.Stage; stage != "" && stage != defaultStage {
		prefix := "/" + stage
		if path == prefix {
			path = "/"
		} else if strings.HasPrefix(path, prefix+"/") {
			path = strings.TrimPrefix(path, prefix)
		}
	}

	req.RawPath = path
	req.RequestContext.HTTP.Path = path
	return req
}
