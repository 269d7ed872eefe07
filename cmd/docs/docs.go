// Package docs holds the OpenAPI document served under /swagger.
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
        "/accounts": {
            "post": {
                "description": "Opens an account for an existing customer with a generated account number.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Open an account",
                "parameters": [
                    {
                        "description": "Account details",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateAccountRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Invalid input or no free account number", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/accounts/{accountID}": {
            "get": {
                "description": "Returns the account with its current balance.",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get an account",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "accountID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/accounts/{accountID}/transactions": {
            "get": {
                "description": "Returns one page of ledger entries where the account is source or destination, newest first.",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List an account's transactions",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number, starting at 1", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListTransactionsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/customers": {
            "get": {
                "description": "Returns one page of customers ordered by name.",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "List customers",
                "parameters": [
                    {"type": "integer", "description": "Page number, starting at 1", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListCustomersResponse"}},
                    "400": {"description": "Invalid page number", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a customer. Emails are unique, compared case-insensitively.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Register a customer",
                "parameters": [
                    {
                        "description": "Customer details",
                        "name": "customer",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateCustomerRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CustomerResponse"}},
                    "400": {"description": "Invalid input or email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/customers/{customerID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get a customer",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "customerID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CustomerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/customers/{customerID}/accounts": {
            "get": {
                "description": "Accounts are ordered by type, descending.",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "List a customer's accounts",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "customerID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListAccountsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/customers/{customerID}/accounts/{accountID}": {
            "get": {
                "description": "Returns 404 when the account does not exist or belongs to another customer.",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get one of a customer's accounts",
                "parameters": [
                    {"type": "integer", "description": "Customer ID", "name": "customerID", "in": "path", "required": true},
                    {"type": "integer", "description": "Account ID", "name": "accountID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/reconciliation": {
            "get": {
                "description": "Recomputes every account balance from its opening balance and the ledger and reports any disagreement.",
                "produces": ["application/json"],
                "tags": ["reconciliation"],
                "summary": "Reconcile balances",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ReconcileResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "post": {
                "description": "Moves an amount from one account to another. Debit, credit and ledger entry are applied together or not at all.\nEach successful call creates a new transaction; requests are not deduplicated.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Transfer money",
                "parameters": [
                    {
                        "description": "Transfer details",
                        "name": "transfer",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TransferRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TransactionResponse"}},
                    "400": {"description": "Malformed request or non-positive amount", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Insufficient funds", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Same account or more than 2 decimal places", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Temporarily unavailable, nothing was applied", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions/{transactionID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get a transaction",
                "parameters": [
                    {"type": "integer", "description": "Transaction ID", "name": "transactionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.BalanceMismatch": {
            "type": "object",
            "properties": {
                "accountId": {"type": "integer"},
                "expected": {"type": "number"},
                "stored": {"type": "number"}
            }
        },
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "accountNumber": {"type": "string", "example": "1234 5678 9012 3456"},
                "balance": {"type": "number", "example": 100.00},
                "createdAt": {"type": "string"},
                "customerId": {"type": "integer"},
                "id": {"type": "integer"},
                "type": {"type": "string"}
            }
        },
        "dto.CreateAccountRequest": {
            "type": "object",
            "required": ["customerId", "type"],
            "properties": {
                "customerId": {"type": "integer"},
                "initialBalance": {"type": "number", "example": 100.00},
                "type": {"type": "string", "maxLength": 32, "example": "savings"}
            }
        },
        "dto.CreateCustomerRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "email": {"type": "string", "maxLength": 255, "example": "ada@example.com"},
                "name": {"type": "string", "maxLength": 255, "example": "Ada Lovelace"}
            }
        },
        "dto.CustomerResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "dto.ListAccountsResponse": {
            "type": "object",
            "properties": {
                "accounts": {"type": "array", "items": {"$ref": "#/definitions/dto.AccountResponse"}}
            }
        },
        "dto.ListCustomersResponse": {
            "type": "object",
            "properties": {
                "customers": {"type": "array", "items": {"$ref": "#/definitions/dto.CustomerResponse"}},
                "pagination": {"$ref": "#/definitions/pagination.Page"}
            }
        },
        "dto.ListTransactionsResponse": {
            "type": "object",
            "properties": {
                "pagination": {"$ref": "#/definitions/pagination.Page"},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/dto.TransactionResponse"}}
            }
        },
        "dto.TransactionResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number", "example": 30.00},
                "createdAt": {"type": "string"},
                "fromAccountId": {"type": "integer"},
                "fromCustomerId": {"type": "integer"},
                "message": {"type": "string"},
                "toAccountId": {"type": "integer"},
                "toCustomerId": {"type": "integer"},
                "transactionId": {"type": "integer"},
                "type": {"type": "string", "example": "TRANSFER"}
            }
        },
        "dto.TransferRequest": {
            "type": "object",
            "required": ["fromAccountId", "toAccountId"],
            "properties": {
                "amount": {"type": "number", "example": 30.00},
                "fromAccountId": {"type": "integer"},
                "message": {"type": "string", "maxLength": 255},
                "toAccountId": {"type": "integer"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "INSUFFICIENT_FUNDS"},
                "error": {"type": "string", "example": "Insufficient funds"}
            }
        },
        "handlers.ReconcileResponse": {
            "type": "object",
            "properties": {
                "accountsChecked": {"type": "integer"},
                "checkedAt": {"type": "string"},
                "healthy": {"type": "boolean"},
                "mismatches": {"type": "array", "items": {"$ref": "#/definitions/domain.BalanceMismatch"}},
                "negativeAccounts": {"type": "array", "items": {"type": "integer"}},
                "totalBalance": {"type": "number"}
            }
        },
        "pagination.Page": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Meow Bank API",
	Description:      "Customers, accounts and atomic money transfers over an append-only ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
