// Package mocks provides centralized mock implementations for testing.
//
// Mocks expose a function field per method plus fixed default return values,
// so a test can either script behavior or just set the values it needs:
//
//	jwtService := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: userID}, nil
//	    },
//	}
package mocks
