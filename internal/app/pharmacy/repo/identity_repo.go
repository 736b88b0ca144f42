package repo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

const (
	credentialUsername = 0
	credentialRole     = 3
	credentialName     = 4
	credentialFields   = 6
)

// IdentityRepo reads users from a colon-delimited credentials file and the
// logged-in username from the first line of a status file.
type IdentityRepo struct {
	credentialsPath string
	statusPath      string
}

// NewIdentityRepo creates an IdentityRepo.
func NewIdentityRepo(credentialsPath, statusPath string) contracts.IdentitySource {
	return &IdentityRepo{
		credentialsPath: credentialsPath,
		statusPath:      statusPath,
	}
}

// CurrentSession resolves the logged-in user against the credentials file.
func (r *IdentityRepo) CurrentSession(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	username, err := r.activeUsername()
	if err != nil {
		return domain.Session{}, err
	}

	users, err := r.users()
	if err != nil {
		return domain.Session{}, err
	}
	for _, u := range users {
		if u.UserID == username {
			return u, nil
		}
	}
	return domain.Session{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
}

func (r *IdentityRepo) activeUsername() (string, error) {
	f, err := os.Open(r.statusPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrNoActiveUser
		}
		return "", fmt.Errorf("failed to read %s: %w", r.statusPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", r.statusPath, err)
		}
		return "", domain.ErrNoActiveUser
	}
	username := strings.TrimSpace(scanner.Text())
	if username == "" {
		return "", domain.ErrNoActiveUser
	}
	return username, nil
}

func (r *IdentityRepo) users() ([]domain.Session, error) {
	f, err := os.Open(r.credentialsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s missing", domain.ErrUserNotFound, r.credentialsPath)
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.credentialsPath, err)
	}
	defer f.Close()

	var users []domain.Session
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ":")
		if len(fields) < credentialFields {
			return nil, fmt.Errorf("%s line %d: expected %d fields, got %d", r.credentialsPath, line, credentialFields, len(fields))
		}
		users = append(users, domain.Session{
			UserID:      fields[credentialUsername],
			DisplayName: fields[credentialName],
			Role:        domain.Role(fields[credentialRole]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.credentialsPath, err)
	}
	return users, nil
}
