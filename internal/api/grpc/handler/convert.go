package handler

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/seeseehome-users/internal/model"
)

var (
	createFields    = fieldSet("username", "email", "password", "userperm", "is_active")
	updateFields    = fieldSet("id", "username", "userperm")
	setActiveFields = fieldSet("id", "is_active")
)

func fieldSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// checkFields rejects keys outside allowed.
func checkFields(req *structpb.Struct, allowed map[string]struct{}) error {
	var unknown []string
	for key := range req.GetFields() {
		if _, ok := allowed[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return model.NewInvalidInputError(unknown[0], fmt.Sprintf("unsupported field: %s", unknown[0]))
	}
	return nil
}

func stringField(req *structpb.Struct, key string) (string, bool, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return "", false, nil
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", false, model.NewInvalidInputError(key, fmt.Sprintf("%s must be a string", key))
	}
	return s.StringValue, true, nil
}

func boolField(req *structpb.Struct, key string) (bool, bool, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return false, false, nil
	}
	b, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		return false, false, model.NewInvalidInputError(key, fmt.Sprintf("%s must be a boolean", key))
	}
	return b.BoolValue, true, nil
}

func permField(req *structpb.Struct, key string) (*model.Perm, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil, nil
	}
	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) ||
		n.NumberValue < math.MinInt32 || n.NumberValue > math.MaxInt32 {
		return nil, model.NewInvalidInputError(key, fmt.Sprintf("%s must be an integer", key))
	}
	perm := model.Perm(n.NumberValue)
	return &perm, nil
}

func parseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, model.NewInvalidInputError("id", "id must be set")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewInvalidInputError("id", "id must be a valid UUID")
	}
	return id, nil
}

func idField(req *structpb.Struct) (uuid.UUID, error) {
	raw, _, err := stringField(req, "id")
	if err != nil {
		return uuid.Nil, err
	}
	return parseID(raw)
}

// userToStruct renders a user without its password hash.
func userToStruct(user model.User) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":         user.ID.String(),
		"username":   user.Username,
		"email":      user.Email,
		"is_active":  user.IsActive,
		"is_staff":   user.IsStaff,
		"userperm":   int64(user.UserPerm),
		"created_at": user.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at": user.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
}
