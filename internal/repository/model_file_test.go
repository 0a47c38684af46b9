package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"civistash/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupModelFileRepository(t *testing.T) (ModelFileRepository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	conf := viper.New()
	conf.Set("log.log_file_name", filepath.Join(os.TempDir(), "civistash-test.log"))
	logger := log.NewLog(conf)

	repo := NewRepository(logger, db, nil)
	return NewModelFileRepository(repo), mock
}

func TestModelFileGetByFileIDNotFound(t *testing.T) {
	repo, mock := setupModelFileRepository(t)

	mock.ExpectQuery("SELECT \\* FROM `model_file`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	f, err := repo.GetByFileID(context.Background(), 100)
	assert.NoError(t, err)
	assert.Nil(t, f)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModelFileRecordCreated(t *testing.T) {
	repo, mock := setupModelFileRepository(t)

	// 状态三元组整体写入：task_id + finished=false + deleted=false
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `model_file` SET").
		WithArgs(false, false, sqlmock.AnyArg(), "task-1", 100).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.RecordCreated(context.Background(), 100, "task-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModelFileRecordFailed(t *testing.T) {
	repo, mock := setupModelFileRepository(t)

	// task_id 清空，资源回到可重建状态
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `model_file` SET").
		WithArgs(false, false, sqlmock.AnyArg(), nil, 100).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.RecordFailed(context.Background(), 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModelFileRecordFinished(t *testing.T) {
	repo, mock := setupModelFileRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `model_file` SET").
		WithArgs(false, true, sqlmock.AnyArg(), 100).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.RecordFinished(context.Background(), 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModelFileRecordCleaned(t *testing.T) {
	repo, mock := setupModelFileRepository(t)

	// 清理时 finished 一并置位，保证 deleted ⇒ finished 不变式
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `model_file` SET").
		WithArgs(true, true, sqlmock.AnyArg(), 100).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.RecordCleaned(context.Background(), 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModelFileListActive(t *testing.T) {
	repo, mock := setupModelFileRepository(t)

	rows := sqlmock.NewRows([]string{"id", "file_id", "version_id", "task_id", "finished", "deleted"}).
		AddRow(1, 100, 10, "task-1", false, false).
		AddRow(2, 101, 10, "task-2", false, false)
	mock.ExpectQuery("SELECT \\* FROM `model_file` WHERE task_id IS NOT NULL").
		WillReturnRows(rows)

	files, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, "task-1", *files[0].TaskID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
