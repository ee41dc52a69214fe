package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tableturnerr Dashboard API",
        "description": "Backend-for-frontend API for the CRM dashboard",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Session login and logout"},
        {"name": "Dashboard", "description": "Overview stats and activity"},
        {"name": "Notes", "description": "Team notes with archive and trash"},
        {"name": "ColdCalls", "description": "Cold call detail"},
        {"name": "Pages", "description": "Placeholder pages"}
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
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in with email and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "End the current session",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/session": {
            "get": {
                "tags": ["Auth"],
                "summary": "Report the process session state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Overview stats and recent activity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes": {
            "get": {
                "tags": ["Notes"],
                "summary": "List notes for a tab with optional search",
                "parameters": [
                    {"name": "tab", "in": "query", "type": "string", "enum": ["active", "archived", "deleted"]},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes/draft": {
            "get": {
                "tags": ["Notes"],
                "summary": "Return the working draft",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No edit session"}
                }
            },
            "post": {
                "tags": ["Notes"],
                "summary": "Start an edit session for a new note",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Edit session already in progress"}
                }
            },
            "put": {
                "tags": ["Notes"],
                "summary": "Apply field changes to the working draft",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DraftUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Notes"],
                "summary": "Discard the working draft",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/notes/draft/save": {
            "post": {
                "tags": ["Notes"],
                "summary": "Persist the working draft",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes/draft/{id}": {
            "post": {
                "tags": ["Notes"],
                "summary": "Start an edit session for an existing note",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes/{id}/{action}": {
            "post": {
                "tags": ["Notes"],
                "summary": "Apply a status action to a note",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "action", "in": "path", "required": true, "type": "string", "enum": ["archive", "unarchive", "trash", "restore"]}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/notes/{id}": {
            "delete": {
                "tags": ["Notes"],
                "summary": "Permanently delete a trashed note",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "confirm", "in": "query", "required": true, "type": "boolean"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Confirmation missing"},
                    "409": {"description": "Note is not in the trash"}
                }
            }
        },
        "/notes/export": {
            "get": {
                "tags": ["Notes"],
                "summary": "Download the filtered notes as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "tab", "in": "query", "type": "string"},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/cold-calls/{id}": {
            "get": {
                "tags": ["ColdCalls"],
                "summary": "Cold call detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/goals": {
            "get": {
                "tags": ["Pages"],
                "summary": "Goals page placeholder",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Pages"],
                "summary": "Settings page placeholder",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Note": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "note_text": {"type": "string"},
                "created_by": {"type": "string"},
                "is_archived": {"type": "boolean"},
                "is_deleted": {"type": "boolean"},
                "created": {"type": "string"},
                "updated": {"type": "string"}
            }
        },
        "DraftUpdate": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "note_text": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "identity": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["identity", "password"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
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
