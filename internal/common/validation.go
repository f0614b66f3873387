package common

import (
	"strings"
)

const (
	maxNicknameLen       = 64
	maxRequestMessageLen = 200
)

func ValidateUserID(id uint64) error {
	if id == 0 {
		return Wrap(ErrValidation, "user id is required")
	}
	return nil
}

func ValidateGroupID(id uint64) error {
	if id == 0 {
		return Wrap(ErrValidation, "group id is required")
	}
	return nil
}

func ValidateNickname(nickname string) error {
	if len(strings.TrimSpace(nickname)) == 0 {
		return Wrap(ErrValidation, "nickname cannot be empty")
	}
	if len(nickname) > maxNicknameLen {
		return Wrap(ErrValidation, "nickname is too long")
	}
	return nil
}

func ValidateRequestMessage(message string) error {
	if len(message) > maxRequestMessageLen {
		return Wrap(ErrValidation, "message is too long")
	}
	return nil
}
