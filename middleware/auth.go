package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type contextKey string

// UserIDKey carries the authenticated user id through the request context.
const UserIDKey contextKey = "user_id"

var firebaseAuth *auth.Client

// InitializeFirebase initializes the Firebase Admin SDK from environment
// credentials. Without credentials the server runs in dev mode and token
// verification is skipped.
func InitializeFirebase() error {
	credentialsJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")

	if credentialsJSON == "" {
		if encoded := os.Getenv("FIREBASE_SERVICE_ACCOUNT_BASE64"); encoded != "" {
			decoded, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return fmt.Errorf("error decoding base64 firebase credentials: %w", err)
			}
			credentialsJSON = string(decoded)
		}
	}

	if credentialsJSON == "" {
		log.Warn().Msg("no firebase credentials found, running with auth checks disabled")
		return nil
	}

	opt := option.WithCredentialsJSON([]byte(credentialsJSON))
	config := &firebase.Config{ProjectID: os.Getenv("FIREBASE_PROJECT_ID")}

	app, err := firebase.NewApp(context.Background(), config, opt)
	if err != nil {
		return fmt.Errorf("error initializing firebase app: %w", err)
	}

	firebaseAuth, err = app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("error getting firebase auth client: %w", err)
	}

	log.Info().Msg("firebase admin SDK initialized")
	return nil
}

// AuthMiddleware verifies Firebase ID tokens from the Authorization header
// and injects the user id into the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip auth for CORS preflight requests.
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		// Dev mode: no verifier, use a fixed identity.
		if firebaseAuth == nil {
			ctx := context.WithValue(r.Context(), UserIDKey, "dev-user-1")
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		idToken := extractToken(r.Header.Get("Authorization"))
		if idToken == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token, err := verifyToken(r.Context(), idToken)
		if err != nil {
			log.Warn().Err(err).Msg("token verification failed")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, token.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

func verifyToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, errors.New("firebase auth client not initialized")
	}
	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("error verifying ID token: %w", err)
	}
	return token, nil
}

// GetUserIDFromContext retrieves the authenticated user id, or "" when the
// request carries no identity.
func GetUserIDFromContext(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
