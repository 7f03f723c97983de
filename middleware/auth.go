package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shipsync/shipsync-api/utils"
)

// CheckAuth validates the bearer token and stashes its claims in the
// request context.
func CheckAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing Auth token", "")
			return
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid Auth token", "")
			return
		}

		ctx := context.WithValue(r.Context(), "claims", claims)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	}
}

// CheckRole gates a route to the listed roles. Runs CheckAuth first, so
// handlers behind it always see claims.
func CheckRole(next http.HandlerFunc, roles ...string) http.HandlerFunc {
	return CheckAuth(func(w http.ResponseWriter, r *http.Request) {
		role, err := utils.GetUserRole(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing User Role", "")
			return
		}

		for _, allowed := range roles {
			if strings.EqualFold(role, allowed) {
				next.ServeHTTP(w, r)
				return
			}
		}

		utils.RespondWithError(w, http.StatusForbidden, "Not permitted to perform action", "")
	})
}
