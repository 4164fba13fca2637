// cmd/main.go
package main

import (
	"book-review-api/app"

	_ "book-review-api/docs"
)

// @title           Book Review API
// @version         1.0
// @description     A RESTful API for a book review service.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
