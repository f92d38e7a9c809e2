package h

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestJsonValue_Get(t *testing.T) {
	g := gomega.NewWithT(t)

	v := NewJsonValue(`{"status":"operational","secrets_configured":{"db_password":true}}`)
	g.Expect(v.Get("status")).To(gomega.Equal("operational"))
	g.Expect(v.Get("secrets_configured.db_password")).To(gomega.Equal(true))
	g.Expect(v.Get("missing")).To(gomega.BeNil())
}

func TestToFromJsonString(t *testing.T) {
	g := gomega.NewWithT(t)

	s, err := ToJsonString(map[string]string{"error": "Not Found"})
	g.Expect(err).To(gomega.BeNil())
	g.Expect(s).To(gomega.MatchJSON(`{"error":"Not Found"}`))

	var out map[string]string
	g.Expect(FromJsonString(s, &out)).To(gomega.BeNil())
	g.Expect(out["error"]).To(gomega.Equal("Not Found"))
}
