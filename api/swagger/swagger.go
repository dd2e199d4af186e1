package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Student Context MCP",
        "description": "Read-only student enrollment context. The MCP endpoint (default /mcp) serves the same operations as tools and a resource template.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Operations", "description": "Named query operations"},
        {"name": "Students", "description": "Student profile resource"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/operations": {
            "get": {
                "tags": ["Operations"],
                "summary": "List operations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResultEnvelope"}}
                }
            }
        },
        "/api/v1/operations/call": {
            "post": {
                "tags": ["Operations"],
                "summary": "Call an operation by name",
                "description": "Lookup failures are answered with 200 and success=false. Unknown operations answer 404, invalid arguments 400.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CallRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResultEnvelope"}},
                    "400": {"description": "Invalid arguments", "schema": {"$ref": "#/definitions/ResultEnvelope"}},
                    "404": {"description": "Unknown operation", "schema": {"$ref": "#/definitions/ResultEnvelope"}}
                }
            }
        },
        "/api/v1/students/{student_id}/profile": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student profile",
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResultEnvelope"}},
                    "404": {"description": "Student or enrollment not found", "schema": {"$ref": "#/definitions/ResultEnvelope"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/ResultEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CallRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "enum": ["get_student_profile", "get_class_schedule", "get_next_class", "get_course_topic", "get_covered_topics"]
                },
                "arguments": {
                    "type": "object",
                    "properties": {
                        "student_id": {"type": "string"},
                        "course_code": {"type": "string", "enum": ["AI-101", "AI-201", "AI-202", "AI-301"]},
                        "section": {"type": "string", "enum": ["A", "B", "C"]}
                    }
                }
            },
            "required": ["name"]
        },
        "ResultError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "enum": ["STUDENT_NOT_FOUND", "ENROLLMENT_NOT_FOUND", "SCHEDULE_NOT_FOUND", "NO_NEXT_CLASS", "TOPIC_NOT_FOUND", "INTERNAL_ERROR", "VALIDATION_ERROR", "UNKNOWN_OPERATION", "NOT_FOUND"]
                },
                "message": {"type": "string"}
            }
        },
        "ResultEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/ResultError"}
            },
            "required": ["success", "data", "error"]
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
