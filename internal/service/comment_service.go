package service

import (
	"time"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg/errs"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService() *CommentService {
	return &CommentService{db: mysql.DB}
}

// childDepth 回复层级 = 父评论层级 + 1（无父评论为 0），封顶 3 层
func childDepth(parent *model.Comment) (int, error) {
	if parent == nil {
		return 0, nil
	}
	depth := parent.Depth + 1
	if depth > model.MaxCommentDepth {
		return 0, errs.InvalidState("max reply depth exceeded")
	}
	return depth, nil
}

// CreateComment 评论：在站且未禁言；depth = parent.depth + 1，超过 3 层拒绝
func (s *CommentService) CreateComment(postID uint64, principal, content string, parentID *uint64) (*model.Comment, error) {
	if content == "" {
		return nil, errs.Validation("content required")
	}

	var created *model.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		postRepo := &mysql.PostRepository{DB: tx}
		post, err := postRepo.FindByID(postID)
		if err != nil {
			return asNotFound(err, "post not found")
		}

		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(post.StationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if st.IsArchived() {
			return errs.InvalidState("station archived")
		}

		memberRepo := &mysql.MembershipRepository{DB: tx}
		isMember, err := memberRepo.Exists(post.StationID, principal)
		if err != nil {
			return err
		}
		if !isMember {
			return errs.PermissionDenied("must be a member to comment")
		}
		muted, err := hasActiveRestriction(tx, post.StationID, principal, model.ModerationMute, time.Now())
		if err != nil {
			return err
		}
		if muted {
			return errs.PermissionDenied("you are muted in this station")
		}

		commentRepo := &mysql.CommentRepository{DB: tx}
		var parent *model.Comment
		if parentID != nil {
			p, err := commentRepo.FindByID(*parentID)
			if err != nil {
				return asNotFound(err, "parent comment not found")
			}
			if p.PostID != postID {
				return errs.Validation("parent comment belongs to another post")
			}
			parent = p
		}
		depth, err := childDepth(parent)
		if err != nil {
			return err
		}

		c := &model.Comment{
			PostID:          postID,
			StationID:       post.StationID,
			AuthorPrincipal: principal,
			Content:         content,
			ParentID:        parentID,
			Depth:           depth,
		}
		if err := commentRepo.Create(c); err != nil {
			return err
		}
		if err := postRepo.IncrCommentCount(postID, 1); err != nil {
			return err
		}
		created = c
		return nil
	})
	return created, err
}

// collectSubtree 显式 worklist 收集整棵回复子树（含根），不走递归，防深度问题
func collectSubtree(rootID uint64, childIDs func(uint64) ([]uint64, error)) ([]uint64, error) {
	var ids []uint64
	seen := make(map[uint64]bool)
	stack := []uint64{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
		children, err := childIDs(id)
		if err != nil {
			return nil, err
		}
		stack = append(stack, children...)
	}
	return ids, nil
}

// DeleteComment 级联删除整棵回复子树，帖子的 commentCount 同事务扣掉子树大小。
// 返回实际删除的节点数（含根）。
func (s *CommentService) DeleteComment(commentID uint64, principal string) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		commentRepo := &mysql.CommentRepository{DB: tx}
		c, err := commentRepo.FindByID(commentID)
		if err != nil {
			return asNotFound(err, "comment not found")
		}
		moderated := principal != c.AuthorPrincipal
		if moderated {
			if _, err := requirePermission(tx, c.StationID, principal, model.CapDelete, "missing delete capability"); err != nil {
				return err
			}
		}

		ids, err := collectSubtree(commentID, commentRepo.ChildIDs)
		if err != nil {
			return err
		}
		deleted, err = commentRepo.DeleteByIDs(ids)
		if err != nil {
			return err
		}
		postRepo := &mysql.PostRepository{DB: tx}
		if err := postRepo.IncrCommentCount(c.PostID, -deleted); err != nil {
			return err
		}
		if moderated {
			return appendAudit(tx, c.StationID, "comment.delete", principal, &c.AuthorPrincipal, map[string]any{
				"comment_id": commentID, "deleted": deleted,
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *CommentService) ListByPost(postID uint64, page, size int) ([]model.Comment, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 50
	}
	repo := &mysql.CommentRepository{DB: s.db}
	return repo.ListByPost(postID, (page-1)*size, size)
}
