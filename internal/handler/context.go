package handler

import (
	"fmt"
	"net/http"

	"linkloud/internal/httputil"
)

// getOwnerID extracts the authenticated owner ID set by the auth middleware
func getOwnerID(r *http.Request) (string, error) {
	ownerID := httputil.GetOwnerID(r)
	if ownerID == "" {
		return "", fmt.Errorf("owner ID not found in context")
	}
	return ownerID, nil
}
