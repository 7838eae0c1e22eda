package docs

import "github.com/swaggo/swag"

// @title           Boardly API
// @version         1.0
// @description     API for collaborative boards, lists, cards and membership

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description User management operations

// @tag.name Boards
// @tag.description Board management operations

// @tag.name Members
// @tag.description Board membership operations

// @tag.name Lists
// @tag.description List management operations

// @tag.name Cards
// @tag.description Card management operations

// @tag.name Labels
// @tag.description Label management operations

// @tag.name Activity
// @tag.description Board audit trail

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {}
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Boardly API",
	Description:      "API for collaborative boards, lists, cards and membership",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
