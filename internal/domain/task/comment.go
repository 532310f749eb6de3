package task

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/jsamuelsen11/teamtasks/internal/domain"
)

// AuthorRole labels a comment author relative to the task.
type AuthorRole string

const (
	AuthorLeader   AuthorRole = "leader"
	AuthorAssignee AuthorRole = "assignee"
)

// Comment is one entry in a task's append-only comment log.
type Comment struct {
	ID         int64
	TaskID     int64
	AuthorID   int64
	AuthorRole AuthorRole
	Body       string
	CreatedAt  time.Time
}

// Validate checks business rules for the Comment entity.
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Body) == "" {
		return &domain.ValidationError{Fields: map[string]string{"body": domain.MsgRequired}}
	}
	return nil
}

// String renders the comment as a log line, e.g.
// "[2024-05-01 10:00] Team Leader (User 4): looks good".
func (c Comment) String() string {
	label := "Member"
	if c.AuthorRole == AuthorLeader {
		label = "Team Leader"
	}
	return fmt.Sprintf("[%s] %s (User %d): %s",
		c.CreatedAt.UTC().Format("2006-01-02 15:04"), label, c.AuthorID, c.Body)
}

// Attachment is the metadata of a file stored in the Blob Store.
type Attachment struct {
	ID          int64
	TaskID      int64
	ObjectName  string
	FileName    string
	ContentType string
	Size        int64
	UploadedBy  int64
	UploadedAt  time.Time
}

// ObjectName builds the blob object name "{taskID}/{token}_{file}" from the
// BaseFileName of fileName, so it cannot escape the task's prefix.
func ObjectName(taskID int64, token, fileName string) string {
	return fmt.Sprintf("%d/%s_%s", taskID, token, BaseFileName(fileName))
}

// BaseFileName strips any directory part, with either separator, from an
// uploaded file name. Names with nothing left become "file".
func BaseFileName(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		return "file"
	}
	return base
}
