package entities

import (
	"encoding/json"
	"strings"
)

// CustomerSnapshot is the billing data captured when the order is placed.
// Fields other than nome, email and cpf are kept verbatim in Extra.
type CustomerSnapshot struct {
	Nome  string
	Email string
	CPF   string
	Extra map[string]any
}

func (c CustomerSnapshot) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+3)
	for k, v := range c.Extra {
		out[k] = v
	}
	out["nome"] = c.Nome
	out["email"] = c.Email
	out["cpf"] = c.CPF
	return json.Marshal(out)
}

func (c *CustomerSnapshot) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = CustomerSnapshot{}
	c.Nome, _ = raw["nome"].(string)
	c.Email, _ = raw["email"].(string)
	c.CPF, _ = raw["cpf"].(string)
	delete(raw, "nome")
	delete(raw, "email")
	delete(raw, "cpf")
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

// HasRequiredFields reports whether nome, email and cpf are all present.
func (c CustomerSnapshot) HasRequiredFields() bool {
	return strings.TrimSpace(c.Nome) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.CPF) != ""
}

// FirstName is used to greet the customer in e-mails.
func (c CustomerSnapshot) FirstName() string {
	fields := strings.Fields(c.Nome)
	if len(fields) == 0 {
		return "Cliente"
	}
	return fields[0]
}
