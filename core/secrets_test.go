package f

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestEnvName(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(EnvName(SecretDBPassword)).To(gomega.Equal("DB_PASSWORD"))
	g.Expect(EnvName(SecretAPIKey)).To(gomega.Equal("API_KEY"))
	g.Expect(EnvName("signing-key")).To(gomega.Equal("SIGNING_KEY"))
}

func TestJsonName(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(JsonName(SecretDBPassword)).To(gomega.Equal("db_password"))
	g.Expect(JsonName(SecretAPIKey)).To(gomega.Equal("api_key"))
}

func TestDefaultSecretNames(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(DefaultSecretNames()).To(gomega.Equal([]string{"db-password", "api-key"}))
}
