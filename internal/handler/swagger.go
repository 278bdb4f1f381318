package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SwaggerDocPath is read relative to the working directory on every request.
var SwaggerDocPath = "docs/swagger.json"

// SetupSwagger serves the OpenAPI document and a CDN-hosted Swagger UI.
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", func(c *gin.Context) {
		switch c.Param("any") {
		case "/doc.json":
			c.File(SwaggerDocPath)
		case "/", "/index.html":
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIHTML))
		default:
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		}
	})
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Axoxia Shipping Quotes - API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/doc.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout"
    });
  </script>
</body>
</html>`
