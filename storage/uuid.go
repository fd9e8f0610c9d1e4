package storage

import "github.com/google/uuid"

//go:generate counterfeiter . UUIDGenerator

type UUIDGenerator interface {
	Generate() string
}

type uuidGenerator struct{}

func NewGenerator() *uuidGenerator {
	return &uuidGenerator{}
}

func (u *uuidGenerator) Generate() string {
	return uuid.NewString()
}
