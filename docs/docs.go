// Package docs registers the OpenAPI document served by gin-swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/contact": {
            "post": {
                "description": "Validates the form and delivers it. Every violated field is reported in ` + "`" + `error` + "`" + `.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit Contact Form",
                "parameters": [
                    {"type": "string", "description": "Form session; defaults to client IP", "name": "X-Form-Session", "in": "header"},
                    {"description": "Contact Form Data", "name": "contact", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ContactInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/response.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.ContactReceipt"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"allOf": [{"$ref": "#/definitions/response.Response"}, {"type": "object", "properties": {"error": {"$ref": "#/definitions/domain.FieldErrors"}}}]}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/contact/info": {
            "get": {
                "description": "Contact channels, quick-contact options and offices.",
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Contact Information",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/site/navigation": {
            "get": {
                "description": "Navigation items; the one matching ` + "`" + `path` + "`" + ` exactly is marked active.",
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "Site Navigation",
                "parameters": [
                    {"type": "string", "description": "Current route, e.g. /products", "name": "path", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/site/footer": {
            "get": {
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "Footer Links",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/home": {
            "get": {
                "description": "Featured products, company stats and certifications.",
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "Home Page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List Products",
                "parameters": [
                    {"type": "string", "description": "Category id; 'all' or empty lists everything", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/response.Response"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/products/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Product Categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Product Details",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/response.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.Product"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/uses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "Product Applications",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/technology": {
            "get": {
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "Technology and Sustainability",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/about": {
            "get": {
                "produces": ["application/json"],
                "tags": ["site"],
                "summary": "About the Company",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ContactInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Alice Doe"},
                "email": {"type": "string", "example": "alice@example.com"},
                "company": {"type": "string"},
                "phone": {"type": "string", "example": "+383 44 123 456"},
                "subject": {"type": "string", "example": "Partnership Inquiry"},
                "message": {"type": "string"}
            }
        },
        "domain.ContactReceipt": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "received_at": {"type": "string"}
            }
        },
        "domain.FieldError": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["TooShort", "InvalidFormat"]},
                "message": {"type": "string"}
            }
        },
        "domain.FieldErrors": {
            "type": "object",
            "additionalProperties": {"$ref": "#/definitions/domain.FieldError"}
        },
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "applications": {"type": "array", "items": {"type": "string"}},
                "specs": {"type": "object", "additionalProperties": {"type": "string"}},
                "featured": {"type": "boolean"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Europlast Site API",
	Description:      "Contact form submission and site content for the Europlast website.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
