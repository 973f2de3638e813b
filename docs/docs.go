// Package docs registra a documentação OpenAPI servida em /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{.Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/register": {
            "post": {
                "tags": ["users"],
                "summary": "Registra um novo usuário",
                "parameters": [{"in": "body", "name": "registration", "required": true, "schema": {"$ref": "#/definitions/domain.UserRegistration"}}],
                "responses": {
                    "201": {"description": "Usuário criado com sucesso", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "Email já cadastrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["users"],
                "summary": "Autentica um usuário e retorna um JWT",
                "parameters": [{"in": "body", "name": "login", "required": true, "schema": {"$ref": "#/definitions/user.LoginRequest"}}],
                "responses": {
                    "200": {"description": "Token JWT emitido", "schema": {"$ref": "#/definitions/user.TokenResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Lista os produtos, mais recentes primeiro",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Cria um novo produto",
                "parameters": [{"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/product.CreateProductRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "503": {"description": "Banco de dados indisponível", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/products/inventory-value": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Valor total do estoque (quantidade x preço de compra)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/product.InventoryValueResponse"}}}
            }
        },
        "/products/low-stock": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Produtos com estoque baixo",
                "parameters": [{"type": "integer", "description": "Limite (padrão 10)", "name": "threshold", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}}}
            }
        },
        "/products/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Obtém um produto por ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "404": {"description": "Produto não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Atualiza parcialmente um produto",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/domain.ProductUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "404": {"description": "Produto não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["products"],
                "summary": "Remove um produto",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Apenas administradores", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Produto não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/movements": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["movements"],
                "summary": "Lista movimentações, mais recentes primeiro",
                "parameters": [
                    {"type": "integer", "name": "product_id", "in": "query"},
                    {"type": "string", "name": "start", "in": "query"},
                    {"type": "string", "name": "end", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.StockMovement"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["movements"],
                "summary": "Registra uma entrada ou saída de estoque",
                "parameters": [{"in": "body", "name": "movement", "required": true, "schema": {"$ref": "#/definitions/domain.MovementRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.MovementResult"}},
                    "400": {"description": "Quantidade ou tipo inválidos", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/movements/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["movements"],
                "summary": "Obtém uma movimentação por ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.StockMovement"}}}
            }
        },
        "/transactions": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["transactions"],
                "summary": "Lista lançamentos, mais recentes primeiro",
                "parameters": [
                    {"type": "string", "name": "start", "in": "query"},
                    {"type": "string", "name": "end", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.FinancialTransaction"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["transactions"],
                "summary": "Registra um lançamento financeiro",
                "parameters": [{"in": "body", "name": "transaction", "required": true, "schema": {"$ref": "#/definitions/domain.TransactionRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.FinancialTransaction"}}}
            }
        },
        "/transactions/balance": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["transactions"],
                "summary": "Saldo atual (entradas menos saídas)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/transaction.BalanceResponse"}}}
            }
        },
        "/transactions/monthly-balance": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["transactions"],
                "summary": "Entradas, saídas e saldo de um mês",
                "parameters": [
                    {"type": "integer", "name": "year", "in": "query", "required": true},
                    {"type": "integer", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/transaction.MonthlyBalanceResponse"}},
                    "400": {"description": "Mês inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["transactions"],
                "summary": "Obtém um lançamento por ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FinancialTransaction"}}}
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["dashboard"],
                "summary": "Indicadores do painel",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboardservice.Summary"}}}
            }
        }
    },
    "definitions": {
        "domain.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "category": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.UserRegistration": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "user.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "user.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "quantity": {"type": "integer"},
                "purchase_price": {"type": "integer"},
                "sale_price": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "product.CreateProductRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Caneta azul"},
                "category": {"type": "string", "example": "Papelaria"},
                "quantity": {"type": "integer", "example": 100},
                "purchase_price": {"type": "integer", "example": 150},
                "sale_price": {"type": "integer", "example": 300}
            }
        },
        "domain.ProductUpdate": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "category": {"type": "string"},
                "quantity": {"type": "integer"},
                "purchase_price": {"type": "integer"},
                "sale_price": {"type": "integer"}
            }
        },
        "money.Amount": {
            "type": "object",
            "properties": {"cents": {"type": "integer"}, "display": {"type": "string", "example": "R$ 1.234,56"}}
        },
        "product.InventoryValueResponse": {
            "type": "object",
            "properties": {"total_value": {"$ref": "#/definitions/money.Amount"}}
        },
        "domain.StockMovement": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "product_id": {"type": "integer"},
                "type": {"type": "string", "enum": ["entrada", "saida"]},
                "quantity": {"type": "integer"},
                "date": {"type": "string"},
                "observation": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.MovementRequest": {
            "type": "object",
            "properties": {
                "product_id": {"type": "integer"},
                "type": {"type": "string", "enum": ["entrada", "saida"]},
                "quantity": {"type": "integer", "minimum": 1},
                "observation": {"type": "string"}
            }
        },
        "domain.MovementResult": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "product_id": {"type": "integer"},
                "type": {"type": "string"},
                "quantity": {"type": "integer"},
                "date": {"type": "string"},
                "observation": {"type": "string"},
                "created_at": {"type": "string"},
                "product_adjusted": {"type": "boolean"},
                "new_quantity": {"type": "integer"}
            }
        },
        "domain.FinancialTransaction": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "type": {"type": "string", "enum": ["entrada", "saida"]},
                "category": {"type": "string"},
                "value": {"type": "integer"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.TransactionRequest": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["entrada", "saida"]},
                "category": {"type": "string"},
                "value": {"type": "integer", "minimum": 1},
                "date": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "transaction.BalanceResponse": {
            "type": "object",
            "properties": {"balance": {"$ref": "#/definitions/money.Amount"}}
        },
        "transaction.MonthlyBalanceResponse": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "entrada": {"type": "integer"},
                "saida": {"type": "integer"},
                "balance": {"type": "integer"}
            }
        },
        "dashboardservice.MonthlySummary": {
            "type": "object",
            "properties": {
                "entrada": {"$ref": "#/definitions/money.Amount"},
                "saida": {"$ref": "#/definitions/money.Amount"},
                "balance": {"$ref": "#/definitions/money.Amount"}
            }
        },
        "dashboardservice.Summary": {
            "type": "object",
            "properties": {
                "current_balance": {"$ref": "#/definitions/money.Amount"},
                "inventory_value": {"$ref": "#/definitions/money.Amount"},
                "current_month": {"$ref": "#/definitions/dashboardservice.MonthlySummary"},
                "low_stock_threshold": {"type": "integer"},
                "low_stock_products": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Gestão API",
	Description:      "Back-office de estoque e fluxo de caixa. Valores monetários em centavos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
