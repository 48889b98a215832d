package service

import (
	"time"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg/errs"
	"Station_Hub/internal/repository/mysql"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService() *PostService {
	return &PostService{db: mysql.DB}
}

// CreatePost 发帖：要求在站、未被禁言；update 类型只有站长能发。
// 发帖成功时同事务给作者记声望（站长自己不计）。
func (s *PostService) CreatePost(stationID uint64, principal, postType, title, content string) (*model.Post, error) {
	if title == "" {
		return nil, errs.Validation("title required")
	}
	if postType == "" {
		return nil, errs.Validation("post type required")
	}

	var created *model.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(stationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if st.IsArchived() {
			return errs.InvalidState("station archived")
		}

		memberRepo := &mysql.MembershipRepository{DB: tx}
		isMember, err := memberRepo.Exists(stationID, principal)
		if err != nil {
			return err
		}
		if !isMember {
			return errs.PermissionDenied("must be a member to post")
		}

		// 封禁已经移除了成员关系，这里只需要再挡禁言
		muted, err := hasActiveRestriction(tx, stationID, principal, model.ModerationMute, time.Now())
		if err != nil {
			return err
		}
		if muted {
			return errs.PermissionDenied("you are muted in this station")
		}

		if postType == model.PostTypeUpdate && principal != st.OwnerPrincipal {
			return errs.PermissionDenied("only the captain posts updates")
		}

		post := &model.Post{
			StationID:       stationID,
			AuthorPrincipal: principal,
			Type:            postType,
			Title:           title,
			Content:         content,
			IsOwnerPost:     principal == st.OwnerPrincipal,
		}
		postRepo := &mysql.PostRepository{DB: tx}
		if err := postRepo.Create(post); err != nil {
			return err
		}
		if err := stationRepo.IncrPostCount(stationID, 1); err != nil {
			return err
		}
		if err := awardKarma(tx, st, principal, postType); err != nil {
			return err
		}
		created = post
		return nil
	})
	return created, err
}

// PinPost 置顶/取消置顶，需要 pin 权限
func (s *PostService) PinPost(postID uint64, actor string, pinned bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		postRepo := &mysql.PostRepository{DB: tx}
		post, err := postRepo.FindByID(postID)
		if err != nil {
			return asNotFound(err, "post not found")
		}
		if _, err := requirePermission(tx, post.StationID, actor, model.CapPin, "missing pin capability"); err != nil {
			return err
		}
		if err := postRepo.SetPinned(postID, pinned); err != nil {
			return err
		}
		action := "post.pin"
		if !pinned {
			action = "post.unpin"
		}
		return appendAudit(tx, post.StationID, action, actor, &post.AuthorPrincipal, map[string]any{"post_id": postID})
	})
}

// DeletePost 作者本人或持有 delete 权限者可删；软删除并减帖子计数
func (s *PostService) DeletePost(postID uint64, actor string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		postRepo := &mysql.PostRepository{DB: tx}
		post, err := postRepo.FindByID(postID)
		if err != nil {
			return asNotFound(err, "post not found")
		}
		moderated := actor != post.AuthorPrincipal
		if moderated {
			if _, err := requirePermission(tx, post.StationID, actor, model.CapDelete, "missing delete capability"); err != nil {
				return err
			}
		}
		affected, err := postRepo.SoftDelete(postID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil // 已删除，幂等
		}
		stationRepo := &mysql.StationRepository{DB: tx}
		if err := stationRepo.IncrPostCount(post.StationID, -1); err != nil {
			return err
		}
		if moderated {
			return appendAudit(tx, post.StationID, "post.delete", actor, &post.AuthorPrincipal, map[string]any{"post_id": postID})
		}
		return nil
	})
}

func (s *PostService) GetPost(postID uint64) (*model.Post, error) {
	repo := &mysql.PostRepository{DB: s.db}
	post, err := repo.FindByID(postID)
	if err != nil {
		return nil, asNotFound(err, "post not found")
	}
	return post, nil
}

// ListByStationCursor 游标分页：首页不传 lastID/lastCreatedAt（或传 0），
// 返回 nextLastID/nextLastCreatedAt 供下一页使用
func (s *PostService) ListByStationCursor(stationID uint64, lastID uint64, lastCreatedAt int64, size int) ([]model.Post, uint64, int64, error) {
	if size <= 0 || size > 50 {
		size = 20
	}
	repo := &mysql.PostRepository{DB: s.db}
	list, err := repo.ListByStationCursor(stationID, lastID, lastCreatedAt, size)
	if err != nil {
		return nil, 0, 0, err
	}
	var nextID uint64
	var nextTS int64
	if len(list) > 0 {
		last := list[len(list)-1]
		nextID = last.ID
		nextTS = last.CreatedAt.Unix()
	}
	return list, nextID, nextTS, nil
}
