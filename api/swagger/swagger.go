package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Event Desk API",
        "description": "Event admission, conflict detection, and analytics for the campus scheduling dashboard",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Event scheduling requests"},
        {"name": "Tickets", "description": "Overlap and venue issue reports"},
        {"name": "Invites", "description": "Staff coordinator invitations"},
        {"name": "Analytics", "description": "Derived analytics and exports"},
        {"name": "Reference", "description": "Static venue and staff catalog"}
    ],
    "paths": {
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List a club's events",
                "parameters": [
                    {"name": "club", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Submit an event scheduling request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Scheduling conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/upcoming": {
            "get": {
                "tags": ["Events"],
                "summary": "Approved events that have not started yet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/past": {
            "get": {
                "tags": ["Events"],
                "summary": "Approved events that already took place",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/pending": {
            "get": {
                "tags": ["Events"],
                "summary": "Events awaiting an admin decision",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/events/approved": {
            "get": {
                "tags": ["Events"],
                "summary": "Approved events, most recently updated first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tickets": {
            "get": {
                "tags": ["Tickets"],
                "summary": "List a club's tickets",
                "parameters": [
                    {"name": "club", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Tickets"],
                "summary": "Report an overlap or venue issue",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitTicketRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/invites": {
            "get": {
                "tags": ["Invites"],
                "summary": "List staff invites by club or category",
                "parameters": [
                    {"name": "club", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string", "enum": ["pending", "approved"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Invites"],
                "summary": "Invite a staff member to coordinate club events",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitStaffInviteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/analytics": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Current analytics snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/analytics/exports": {
            "post": {
                "tags": ["Analytics"],
                "summary": "Request an analytics snapshot export",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/analytics/exports/{id}": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Poll an export job",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/download": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Download a finished export via signed token",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reference/buildings": {
            "get": {
                "tags": ["Reference"],
                "summary": "List buildings and their venues",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reference/departments": {
            "get": {
                "tags": ["Reference"],
                "summary": "List departments and their staff",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "SubmitEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "club": {"type": "string"},
                "date": {"type": "string", "example": "2026-09-12"},
                "startTime": {"type": "string", "example": "10:00"},
                "endTime": {"type": "string", "example": "12:00"},
                "venue": {"type": "string"},
                "building": {"type": "string"},
                "description": {"type": "string"},
                "requirements": {"type": "string"},
                "expectedAttendees": {"type": "integer"},
                "staffCoordinator": {"$ref": "#/definitions/StaffCoordinator"}
            },
            "required": ["title", "date", "startTime", "endTime", "venue", "building", "description", "staffCoordinator"]
        },
        "StaffCoordinator": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "department": {"type": "string"}
            }
        },
        "SubmitTicketRequest": {
            "type": "object",
            "properties": {
                "club": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string", "enum": ["Technical", "Venue", "Equipment", "Other"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]}
            },
            "required": ["title", "description", "category", "priority"]
        },
        "SubmitStaffInviteRequest": {
            "type": "object",
            "properties": {
                "club": {"type": "string"},
                "department": {"type": "string"},
                "staffId": {"type": "string"},
                "staffName": {"type": "string"},
                "role": {"type": "string"},
                "description": {"type": "string"}
            },
            "required": ["department", "staffId", "role", "description"]
        },
        "CreateExportRequest": {
            "type": "object",
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf"]}
            },
            "required": ["format"]
        },
        "FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "fields": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/FieldError"}
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
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
