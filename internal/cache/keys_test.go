package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "assessment",
			objectType:  "session",
			identifier:  "01J9Z",
			expectedKey: "consulthub:assessment:session:01J9Z",
		},
		{
			name:        "empty paramsKey is ignored",
			serviceName: "shop",
			objectType:  "cart",
			identifier:  "c1",
			paramsKey:   []string{},
			expectedKey: "consulthub:shop:cart:c1",
		},
		{
			name:        "params joined with underscore",
			serviceName: "catalog",
			objectType:  "products",
			identifier:  "all",
			paramsKey:   []string{"q-mug", "price-low"},
			expectedKey: "consulthub:catalog:products:all:q-mug_price-low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestDomainKeys(t *testing.T) {
	assert.Equal(t, "consulthub:assessment:session:abc", AssessmentSessionKey("abc"))
	assert.Equal(t, "consulthub:shop:cart:xyz", CartKey("xyz"))
}
