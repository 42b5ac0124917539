// Package historial registers the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g internal/historial/http/router.go -o api/historial
package historial

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Farmacias Benavides"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/auth/login": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Log in",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.Session"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "429": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/historialsdk.LoginRequest"
                        }
                    }
                ]
            }
        },
        "/v1/auth/register": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Register",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.Session"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "429": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/historialsdk.RegisterRequest"
                        }
                    }
                ]
            }
        },
        "/v1/auth/logout": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Log out",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/session": {
            "get": {
                "tags": [
                    "Auth"
                ],
                "summary": "Current session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.SessionResponse"
                        }
                    }
                }
            }
        },
        "/v1/dashboard": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Dashboard",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Dashboard"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                }
            }
        },
        "/v1/logs": {
            "get": {
                "tags": [
                    "Logs"
                ],
                "summary": "Access log",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.LogsResponse"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case-insensitive search",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Module tag or all",
                        "name": "module",
                        "in": "query"
                    }
                ]
            }
        },
        "/v1/logs/modules": {
            "get": {
                "tags": [
                    "Logs"
                ],
                "summary": "Module tags",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.ModulesResponse"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                }
            }
        },
        "/v1/logs/export": {
            "get": {
                "tags": [
                    "Logs"
                ],
                "summary": "Export access log",
                "produces": [
                    "text/csv"
                ],
                "responses": {
                    "200": {
                        "description": "CSV",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case-insensitive search",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Module tag or all",
                        "name": "module",
                        "in": "query"
                    }
                ]
            }
        },
        "/v1/patients": {
            "get": {
                "tags": [
                    "Patients"
                ],
                "summary": "List patients",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Patient"
                            }
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search by name, CURP or email",
                        "name": "q",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Patients"
                ],
                "summary": "Register a patient",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Patient"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.PatientInput"
                        }
                    }
                ]
            }
        },
        "/v1/patients/{id}": {
            "put": {
                "tags": [
                    "Patients"
                ],
                "summary": "Update a patient",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Patient"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.PatientInput"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Patients"
                ],
                "summary": "Delete a patient",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/users": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List staff",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.SystemUser"
                            }
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search by name or email",
                        "name": "q",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Create staff entry",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SystemUser"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "409": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.SystemUserInput"
                        }
                    }
                ]
            }
        },
        "/v1/users/{id}": {
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Update staff entry",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SystemUser"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.SystemUserInput"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Users"
                ],
                "summary": "Delete staff entry",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/records": {
            "get": {
                "tags": [
                    "Clinical"
                ],
                "summary": "List clinical records",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.ClinicalRecord"
                            }
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Only this patient",
                        "name": "patientId",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Search by name, CURP or diagnosis",
                        "name": "q",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Clinical"
                ],
                "summary": "Create clinical record",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ClinicalRecord"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.ClinicalRecordInput"
                        }
                    }
                ]
            }
        },
        "/v1/prescriptions": {
            "get": {
                "tags": [
                    "Clinical"
                ],
                "summary": "List prescriptions",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Prescription"
                            }
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Only this patient",
                        "name": "patientId",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Clinical"
                ],
                "summary": "Create prescription",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Prescription"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.PrescriptionInput"
                        }
                    }
                ]
            }
        },
        "/v1/prescriptions/{id}/download": {
            "get": {
                "tags": [
                    "Clinical"
                ],
                "summary": "Download prescription",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "Text",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/me/clinical": {
            "get": {
                "tags": [
                    "Clinical"
                ],
                "summary": "My clinical history",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.OwnHistory"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                }
            }
        },
        "/v1/appointments": {
            "get": {
                "tags": [
                    "Appointments"
                ],
                "summary": "List appointments",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Appointment"
                            }
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "scheduled, completed, cancelled, no-show or all",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Search by patient, reason or doctor",
                        "name": "q",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Appointments"
                ],
                "summary": "Book appointment",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Appointment"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.AppointmentInput"
                        }
                    }
                ]
            }
        },
        "/v1/appointments/{id}/status": {
            "patch": {
                "tags": [
                    "Appointments"
                ],
                "summary": "Change appointment status",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Appointment"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "404": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/design-system": {
            "get": {
                "tags": [
                    "Design system"
                ],
                "summary": "Design tokens",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.DesignSystemConfig"
                        }
                    },
                    "401": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "Design system"
                ],
                "summary": "Update design tokens",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.DesignSystemConfig"
                        }
                    },
                    "400": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.DesignSystemPatch"
                        }
                    }
                ]
            }
        },
        "/v1/design-system/css": {
            "get": {
                "tags": [
                    "Design system"
                ],
                "summary": "Design tokens as CSS",
                "produces": [
                    "text/css"
                ],
                "responses": {
                    "200": {
                        "description": "CSS"
                    }
                }
            }
        },
        "/v1/design-system/reset": {
            "post": {
                "tags": [
                    "Design system"
                ],
                "summary": "Restore default tokens",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.DesignSystemConfig"
                        }
                    },
                    "403": {
                        "description": "error",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.APIError"
                        }
                    }
                }
            }
        },
        "/livez": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Liveness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Readiness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/historialsdk.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "historialsdk.APIError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "error_description": {
                    "type": "string"
                }
            }
        },
        "historialsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "historialsdk.RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "confirmPassword": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "historialsdk.Session": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "roleLabel": {
                    "type": "string"
                },
                "permissions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "historialsdk.SessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {
                    "type": "boolean"
                },
                "session": {
                    "$ref": "#/definitions/historialsdk.Session"
                }
            }
        },
        "historialsdk.AuditEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "userName": {
                    "type": "string"
                },
                "userEmail": {
                    "type": "string"
                },
                "action": {
                    "type": "string"
                },
                "module": {
                    "type": "string"
                }
            }
        },
        "historialsdk.LogsResponse": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/historialsdk.AuditEntry"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "historialsdk.ModulesResponse": {
            "type": "object",
            "properties": {
                "modules": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "historialsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "uptime": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "checks": {
                    "type": "object",
                    "properties": {
                        "database": {
                            "type": "string"
                        },
                        "session": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "service.Dashboard": {
            "type": "object",
            "properties": {
                "session": {
                    "$ref": "#/definitions/historialsdk.Session"
                },
                "roleLabel": {
                    "type": "string"
                },
                "screens": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "title": {
                                "type": "string"
                            },
                            "description": {
                                "type": "string"
                            },
                            "path": {
                                "type": "string"
                            },
                            "permissions": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "service.OwnHistory": {
            "type": "object",
            "properties": {
                "patient": {
                    "$ref": "#/definitions/domain.Patient"
                },
                "records": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ClinicalRecord"
                    }
                },
                "prescriptions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Prescription"
                    }
                }
            }
        },
        "domain.Patient": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "curp": {
                    "type": "string"
                },
                "birthDate": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "emergencyContact": {
                    "type": "string"
                },
                "emergencyPhone": {
                    "type": "string"
                },
                "bloodType": {
                    "type": "string"
                },
                "allergies": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "domain.PatientInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "curp": {
                    "type": "string"
                },
                "birthDate": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "emergencyContact": {
                    "type": "string"
                },
                "emergencyPhone": {
                    "type": "string"
                },
                "bloodType": {
                    "type": "string"
                },
                "allergies": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "domain.SystemUser": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "permissions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "domain.SystemUserInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "permissions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "domain.VitalSigns": {
            "type": "object",
            "properties": {
                "bloodPressure": {
                    "type": "string"
                },
                "heartRate": {
                    "type": "string"
                },
                "temperature": {
                    "type": "string"
                },
                "weight": {
                    "type": "string"
                },
                "height": {
                    "type": "string"
                }
            }
        },
        "domain.ClinicalRecord": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "patientId": {
                    "type": "string"
                },
                "patientName": {
                    "type": "string"
                },
                "patientCURP": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "diagnosis": {
                    "type": "string"
                },
                "symptoms": {
                    "type": "string"
                },
                "vitalSigns": {
                    "$ref": "#/definitions/domain.VitalSigns"
                },
                "notes": {
                    "type": "string"
                },
                "doctorId": {
                    "type": "string"
                },
                "doctorName": {
                    "type": "string"
                },
                "prescriptions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.ClinicalRecordInput": {
            "type": "object",
            "properties": {
                "patientId": {
                    "type": "string"
                },
                "diagnosis": {
                    "type": "string"
                },
                "symptoms": {
                    "type": "string"
                },
                "vitalSigns": {
                    "$ref": "#/definitions/domain.VitalSigns"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "domain.Prescription": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "recordId": {
                    "type": "string"
                },
                "patientId": {
                    "type": "string"
                },
                "patientName": {
                    "type": "string"
                },
                "medication": {
                    "type": "string"
                },
                "dosage": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "instructions": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "doctorId": {
                    "type": "string"
                },
                "doctorName": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "domain.PrescriptionInput": {
            "type": "object",
            "properties": {
                "recordId": {
                    "type": "string"
                },
                "patientId": {
                    "type": "string"
                },
                "medication": {
                    "type": "string"
                },
                "dosage": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "instructions": {
                    "type": "string"
                }
            }
        },
        "domain.Appointment": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "patientId": {
                    "type": "string"
                },
                "patientName": {
                    "type": "string"
                },
                "patientEmail": {
                    "type": "string"
                },
                "doctorId": {
                    "type": "string"
                },
                "doctorName": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "domain.AppointmentInput": {
            "type": "object",
            "properties": {
                "patientId": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "domain.DesignSystemConfig": {
            "type": "object",
            "properties": {
                "fontFamilyBase": {
                    "type": "string"
                },
                "fontFamilyHeading": {
                    "type": "string"
                },
                "baseFontSize": {
                    "type": "integer"
                },
                "benavidesBlue": {
                    "type": "string"
                },
                "benavidesRed": {
                    "type": "string"
                },
                "radius": {
                    "type": "integer"
                }
            }
        },
        "domain.DesignSystemPatch": {
            "type": "object",
            "properties": {
                "fontFamilyBase": {
                    "type": "string"
                },
                "fontFamilyHeading": {
                    "type": "string"
                },
                "baseFontSize": {
                    "type": "integer"
                },
                "benavidesBlue": {
                    "type": "string"
                },
                "benavidesRed": {
                    "type": "string"
                },
                "radius": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "127.0.0.1:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Historial Clínico API",
	Description:      "Loopback API of the clinical-records desk: session, access log and clinical screens.\nThe process holds a single session shared by every caller.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
