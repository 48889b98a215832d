package mysql

import (
	"Station_Hub/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(c *model.Comment) error {
	return r.DB.Create(c).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var c model.Comment
	err := r.DB.First(&c, id).Error
	return &c, err
}

// ChildIDs 直接子评论 id，级联删除的 worklist 用
func (r *CommentRepository) ChildIDs(parentID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.Comment{}).
		Where("parent_id = ?", parentID).
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteByIDs 整批删除（级联删除收集完子树后一次执行）
func (r *CommentRepository) DeleteByIDs(ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.DB.Where("id IN ?", ids).Delete(&model.Comment{})
	return tx.RowsAffected, tx.Error
}

func (r *CommentRepository) ListByPost(postID uint64, offset, limit int) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Where("post_id = ?", postID).
		Order("id ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// IncrVotes 同帖子，一条 UPDATE 改两个计数
func (r *CommentRepository) IncrVotes(id uint64, upDelta, downDelta int64) error {
	return r.DB.Model(&model.Comment{}).Where("id = ?", id).
		UpdateColumns(map[string]any{
			"upvotes":   gorm.Expr("GREATEST(0, upvotes + ?)", upDelta),
			"downvotes": gorm.Expr("GREATEST(0, downvotes + ?)", downDelta),
		}).Error
}
