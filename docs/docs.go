// Package docs describes the SynGen API for the swagger UI.
// Keep it in step with the @-annotations on the handlers in internal/api/handler.
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
        "/": {
            "get": {
                "description": "Instructions shown before a dataset has been generated",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "status"
                ],
                "summary": "Service status",
                "responses": {
                    "200": {
                        "description": "Idle message",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/datasets": {
            "post": {
                "description": "Generate synthetic records for a topic and return them with summary statistics, histograms and download links",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "datasets"
                ],
                "summary": "Generate a dataset",
                "parameters": [
                    {
                        "description": "Topic, record count and optional seed",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.GenerateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Generated dataset",
                        "schema": {
                            "$ref": "#/definitions/handler.GenerateResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request payload",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Encoding failure",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/v1/datasets/export": {
            "get": {
                "description": "Regenerate a dataset from topic, count, seed and as_of date and download it in the requested format",
                "produces": [
                    "application/octet-stream"
                ],
                "tags": [
                    "files"
                ],
                "summary": "Download a dataset",
                "parameters": [
                    {
                        "enum": [
                            "Healthcare",
                            "Finance",
                            "Education"
                        ],
                        "type": "string",
                        "description": "Topic",
                        "name": "topic",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Record count",
                        "name": "count",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Seed returned by the generate call",
                        "name": "seed",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Reference date (YYYY-MM-DD) for date fields",
                        "name": "as_of",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "csv",
                            "xlsx",
                            "json",
                            "sqlite"
                        ],
                        "type": "string",
                        "description": "Export format",
                        "name": "format",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Dataset file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Encoding failure",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/v1/topics": {
            "get": {
                "description": "List the dataset topics with their ordered fields",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "datasets"
                ],
                "summary": "List topics",
                "responses": {
                    "200": {
                        "description": "Topics",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.TopicInfo"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.DownloadLink": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "format": {
                    "$ref": "#/definitions/model.Format"
                },
                "mime_type": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.GenerateRequest": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "example": 100
                },
                "seed": {
                    "type": "integer",
                    "example": 42
                },
                "topic": {
                    "type": "string",
                    "example": "Finance"
                }
            }
        },
        "handler.GenerateResponse": {
            "type": "object",
            "properties": {
                "as_of": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "downloads": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.DownloadLink"
                    }
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Field"
                    }
                },
                "message": {
                    "type": "string"
                },
                "metrics": {
                    "$ref": "#/definitions/pipeline.RunMetrics"
                },
                "records": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "report": {
                    "$ref": "#/definitions/model.Report"
                },
                "run_id": {
                    "type": "string"
                },
                "seed": {
                    "type": "integer"
                },
                "topic": {
                    "$ref": "#/definitions/model.Topic"
                }
            }
        },
        "handler.TopicInfo": {
            "type": "object",
            "properties": {
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Field"
                    }
                },
                "topic": {
                    "$ref": "#/definitions/model.Topic"
                }
            }
        },
        "model.ColumnStats": {
            "type": "object",
            "properties": {
                "25%": {
                    "type": "number"
                },
                "50%": {
                    "type": "number"
                },
                "75%": {
                    "type": "number"
                },
                "count": {
                    "type": "integer"
                },
                "field": {
                    "type": "string"
                },
                "freq": {
                    "type": "integer"
                },
                "kind": {
                    "$ref": "#/definitions/model.FieldKind"
                },
                "max": {
                    "type": "number"
                },
                "mean": {
                    "type": "number"
                },
                "min": {
                    "type": "number"
                },
                "std": {
                    "type": "number"
                },
                "top": {
                    "type": "string"
                },
                "unique": {
                    "type": "integer"
                }
            }
        },
        "model.Field": {
            "type": "object",
            "properties": {
                "kind": {
                    "$ref": "#/definitions/model.FieldKind"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "model.FieldKind": {
            "type": "string",
            "enum": [
                "string",
                "int",
                "float",
                "date"
            ],
            "x-enum-varnames": [
                "KindString",
                "KindInt",
                "KindFloat",
                "KindDate"
            ]
        },
        "model.Format": {
            "type": "string",
            "enum": [
                "csv",
                "xlsx",
                "json",
                "sqlite"
            ],
            "x-enum-varnames": [
                "FormatCSV",
                "FormatXLSX",
                "FormatJSON",
                "FormatSQLite"
            ]
        },
        "model.Histogram": {
            "type": "object",
            "properties": {
                "counts": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "edges": {
                    "type": "array",
                    "items": {
                        "type": "number"
                    }
                },
                "field": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "model.Report": {
            "type": "object",
            "properties": {
                "columns": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.ColumnStats"
                    }
                },
                "histograms": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Histogram"
                    }
                },
                "record_count": {
                    "type": "integer"
                }
            }
        },
        "model.Topic": {
            "type": "string",
            "enum": [
                "Healthcare",
                "Finance",
                "Education"
            ],
            "x-enum-varnames": [
                "Healthcare",
                "Finance",
                "Education"
            ]
        },
        "pipeline.RunMetrics": {
            "type": "object",
            "properties": {
                "duration": {
                    "type": "integer"
                },
                "run_id": {
                    "type": "string"
                },
                "stages": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pipeline.StageMetrics"
                    }
                },
                "start_time": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "pipeline.StageMetrics": {
            "type": "object",
            "properties": {
                "duration": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "records_processed": {
                    "type": "integer"
                },
                "stage": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SynGen API",
	Description:      "Synthetic dataset generation with summary statistics and CSV, XLSX, JSON and SQLite downloads.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
