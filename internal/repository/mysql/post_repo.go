package mysql

import (
	"Station_Hub/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ? AND status = 0", id).Error
	return &post, err
}

// ListByStationCursor 时间游标查询：索引 (station_id, created_at DESC, id DESC)
// lastCreatedAt=0 表示第一页；否则用 (created_at, id) 严格游标
func (r *PostRepository) ListByStationCursor(stationID uint64, lastID uint64, lastCreatedAt int64, limit int) ([]model.Post, error) {
	var list []model.Post
	q := r.DB.Where("station_id = ? AND status = 0", stationID)
	if lastCreatedAt > 0 {
		// 先比时间，同一时间点再用 id 打破并列
		q = q.Where("(created_at < FROM_UNIXTIME(?) OR (created_at = FROM_UNIXTIME(?) AND id < ?))", lastCreatedAt, lastCreatedAt, lastID)
	}
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&list).Error
	return list, err
}

// SoftDelete 返回影响行数，0 表示已删或不存在（幂等）
func (r *PostRepository) SoftDelete(id uint64) (int64, error) {
	tx := r.DB.Model(&model.Post{}).
		Where("id = ? AND status = 0", id).
		Update("status", 1)
	return tx.RowsAffected, tx.Error
}

func (r *PostRepository) SetPinned(id uint64, pinned bool) error {
	return r.DB.Model(&model.Post{}).Where("id = ?", id).Update("is_pinned", pinned).Error
}

// IncrCommentCount 评论计数只从这里走；级联删除时一次性扣子树大小
func (r *PostRepository) IncrCommentCount(id uint64, delta int64) error {
	return r.DB.Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("comment_count", gorm.Expr("GREATEST(0, comment_count + ?)", delta)).Error
}

// IncrVotes 赞/踩两个计数一条 UPDATE 落库，翻转票不存在中间态
func (r *PostRepository) IncrVotes(id uint64, upDelta, downDelta int64) error {
	return r.DB.Model(&model.Post{}).Where("id = ?", id).
		UpdateColumns(map[string]any{
			"upvotes":   gorm.Expr("GREATEST(0, upvotes + ?)", upDelta),
			"downvotes": gorm.Expr("GREATEST(0, downvotes + ?)", downDelta),
		}).Error
}
