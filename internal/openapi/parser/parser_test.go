package parser_test

import (
	"context"
	"testing"

	"github.com/samuelho-dev/monorepo-library-generator/internal/openapi/parser"
	pkgopenapi "github.com/samuelho-dev/monorepo-library-generator/pkg/openapi"
)

const usersSpec = `
openapi: 3.0.0
info:
  title: Users API
  version: "1.0"
paths:
  /users:
    get:
      operationId: listUsers
      summary: List users.
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/UserList"
    post:
      operationId: createUser
      summary: Create a user.
      x-access: admin
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [email]
              properties:
                email:
                  type: string
                age:
                  type: integer
      responses:
        "201":
          description: Created
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/User"
  /ping:
    get:
      responses:
        "204":
          description: No content
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: string
    UserList:
      type: array
      items:
        $ref: "#/components/schemas/User"
`

func mustParse(t *testing.T, spec string) map[string]pkgopenapi.Operation {
	t.Helper()
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("users.yaml"), []byte(spec))
	operations, err := parser.New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	return operations
}

func TestOperations_ExtractsAllMethods(t *testing.T) {
	operations := mustParse(t, usersSpec)

	if len(operations) != 3 {
		t.Fatalf("expected 3 operations, got %d", len(operations))
	}
	for _, id := range []string{"listUsers", "createUser", "get:/ping"} {
		if _, ok := operations[id]; !ok {
			t.Fatalf("missing operation %q", id)
		}
	}
}

func TestOperations_RequestBodySchema(t *testing.T) {
	operations := mustParse(t, usersSpec)
	create := operations["createUser"]

	if create.Method != "POST" || create.Path != "/users" {
		t.Fatalf("unexpected routing: %s %s", create.Method, create.Path)
	}
	body := create.RequestBody
	if body.Type != "object" {
		t.Fatalf("body type = %q", body.Type)
	}
	if len(body.Required) != 1 || body.Required[0] != "email" {
		t.Fatalf("required = %v", body.Required)
	}
	if body.Properties["email"].Type != "string" || body.Properties["age"].Type != "integer" {
		t.Fatalf("properties = %+v", body.Properties)
	}
}

func TestOperations_ResponseRefsPreserved(t *testing.T) {
	operations := mustParse(t, usersSpec)

	list := operations["listUsers"]
	resp, ok := list.Responses["200"]
	if !ok {
		t.Fatalf("listUsers responses = %+v", list.Responses)
	}
	if resp.Ref != "#/components/schemas/UserList" {
		t.Fatalf("ref = %q", resp.Ref)
	}

	ping := operations["get:/ping"]
	if len(ping.Responses) != 0 {
		t.Fatalf("bodyless responses should be dropped, got %+v", ping.Responses)
	}
}

func TestOperations_VendorExtensions(t *testing.T) {
	operations := mustParse(t, usersSpec)
	create := operations["createUser"]

	if create.Extensions[pkgopenapi.AccessExtension] != "admin" {
		t.Fatalf("extensions = %+v", create.Extensions)
	}
}

func TestOperations_EmptyDocumentRejected(t *testing.T) {
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("empty.yaml"), []byte("openapi: 3.0.0\ninfo:\n  title: Empty\n  version: \"1\"\npaths: {}\n"))

	_, err := parser.New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc)
	if err == nil {
		t.Fatalf("expected error for a document without operations")
	}

	options := pkgopenapi.NewParserOptions()
	options.AllowPartialDocuments = true
	operations, err := parser.New(options).Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("partial documents allowed: %v", err)
	}
	if len(operations) != 0 {
		t.Fatalf("expected no operations, got %d", len(operations))
	}
}
