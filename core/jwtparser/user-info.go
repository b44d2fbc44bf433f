// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package jwtparser

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"gopkg.in/square/go-jose.v2"
	"gopkg.in/square/go-jose.v2/jwt"
)

type JWTUserInfo struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Claims we read on top of the registered ones
type userClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// HS256Validator - validates tokens signed with a shared secret. The server and whoever issues
// client tokens both hold the secret
type HS256Validator struct {
	secret []byte
	issuer string
}

func NewHS256Validator(secret string, issuer string) (*HS256Validator, error) {
	if len(secret) <= 0 {
		return nil, fmt.Errorf("no JWT secret configured")
	}
	return &HS256Validator{secret: []byte(secret), issuer: issuer}, nil
}

// GetUserInfo - reads the bearer token from the Authorization header
func (v *HS256Validator) GetUserInfo(r *http.Request) (JWTUserInfo, error) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return JWTUserInfo{}, fmt.Errorf("Missing bearer token in Authorization header")
	}
	return v.ParseToken(strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")))
}

func (v *HS256Validator) ParseToken(token string) (JWTUserInfo, error) {
	result := JWTUserInfo{}

	tok, err := jwt.ParseSigned(token)
	if err != nil {
		return result, fmt.Errorf("Failed to parse JWT: %v", err)
	}

	claims := jwt.Claims{}
	extra := userClaims{}
	err = tok.Claims(v.secret, &claims, &extra)
	if err != nil {
		return result, fmt.Errorf("Failed to verify JWT: %v", err)
	}

	err = claims.Validate(jwt.Expected{Issuer: v.issuer, Time: time.Now()})
	if err != nil {
		return result, fmt.Errorf("Invalid JWT: %v", err)
	}

	if len(claims.Subject) <= 0 {
		return result, fmt.Errorf("Failed to get user ID from request JWT")
	}

	result.UserID = StripUserIDPrefix(claims.Subject)
	result.Name = extra.Name
	result.Email = extra.Email
	return result, nil
}

// MakeToken - issues a token for user, valid for lifetime. Used by tooling and tests that need to
// talk to a server configured with the same secret
func (v *HS256Validator) MakeToken(user JWTUserInfo, lifetime time.Duration) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: v.secret},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.Claims{
		Subject:  user.UserID,
		Issuer:   v.issuer,
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(lifetime)),
	}

	return jwt.Signed(signer).Claims(claims).Claims(userClaims{Name: user.Name, Email: user.Email}).CompactSerialize()
}

// ReadUnverifiedSubject - the user id in a token, without checking its signature. Clients use this
// to know who they are, they can't verify it anyway
func ReadUnverifiedSubject(token string) (string, error) {
	tok, err := jwt.ParseSigned(token)
	if err != nil {
		return "", err
	}

	claims := jwt.Claims{}
	err = tok.UnsafeClaimsWithoutVerification(&claims)
	if err != nil {
		return "", err
	}

	if len(claims.Subject) <= 0 {
		return "", fmt.Errorf("JWT has no subject")
	}
	return StripUserIDPrefix(claims.Subject), nil
}

// StripUserIDPrefix - identity providers prefix ids with the connection, eg "auth0|1234"
func StripUserIDPrefix(id string) string {
	pipePos := strings.Index(id, "|")
	if pipePos > -1 {
		return id[pipePos+1:]
	}
	return id
}
