package model

import "time"

// ModelFile 模型权重文件及其下载任务跟踪记录
// task_id/finished/deleted 三元组描述任务生命周期：
//   - task_id 为空     → failed（从未创建或失败后被清空，可重新创建）
//   - task_id 非空未完成 → created
//   - finished 未清理   → finished
//   - finished 且已清理 → cleaned
// 记录只做逻辑删除（deleted 标志位），从不物理删除
type ModelFile struct {
	Id        int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FileID    int    `json:"file_id" gorm:"column:file_id;uniqueIndex;not null"`
	VersionID int    `json:"version_id" gorm:"column:version_id;not null;index"`
	Name      string `json:"name" gorm:"column:name;size:500;not null"`
	SavePath  string `json:"save_path" gorm:"column:save_path;size:500;not null"`
	Url       string `json:"url" gorm:"column:url;size:1000;not null"`
	SizeKB    float64 `json:"size_kb" gorm:"column:size_kb;default:0"`

	TaskID   *string `json:"task_id" gorm:"column:task_id;size:100"`
	Finished bool    `json:"finished" gorm:"column:finished;default:false"`
	Deleted  bool    `json:"deleted" gorm:"column:deleted;default:false"`

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (ModelFile) TableName() string {
	return "model_file"
}

// TaskState 任务生命周期状态常量
const (
	TaskStateFailed   = "failed"
	TaskStateCreated  = "created"
	TaskStateFinished = "finished"
	TaskStateCleaned  = "cleaned"
)

// DeriveTaskState 由 task_id/finished/deleted 三元组推导生命周期状态（纯函数）
func DeriveTaskState(taskID *string, finished, deleted bool) string {
	switch {
	case taskID == nil:
		return TaskStateFailed
	case !finished:
		return TaskStateCreated
	case !deleted:
		return TaskStateFinished
	default:
		return TaskStateCleaned
	}
}
