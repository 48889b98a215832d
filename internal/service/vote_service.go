package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg/errs"
	"Station_Hub/internal/repository/mysql"
	"Station_Hub/internal/repository/redis"

	"gorm.io/gorm"
)

const (
	VoteActionUpvoted   = "upvoted"
	VoteActionDownvoted = "downvoted"
	VoteActionRemoved   = "removed"
	VoteActionChanged   = "changed"
)

type VoteService struct {
	db         *gorm.DB
	scoreCache *redis.ScoreCacheRepository
	lock       *redis.DistLock
}

func NewVoteService() *VoteService {
	return &VoteService{
		db:         mysql.DB,
		scoreCache: redis.NewScoreCacheRepository(),
		lock:       &redis.DistLock{RDB: redis.Client},
	}
}

type voteOutcome struct {
	Action    string
	UpDelta   int64
	DownDelta int64
}

// voteTransition 单票状态机：无票->计票；同向重投->撤票；反向->一步翻转两个计数，
// 不存在两边都减或都不变的中间态。
func voteTransition(existing *model.Vote, direction int8) voteOutcome {
	if existing == nil {
		if direction == model.VoteUp {
			return voteOutcome{VoteActionUpvoted, 1, 0}
		}
		return voteOutcome{VoteActionDownvoted, 0, 1}
	}
	if existing.Direction == direction {
		if direction == model.VoteUp {
			return voteOutcome{VoteActionRemoved, -1, 0}
		}
		return voteOutcome{VoteActionRemoved, 0, -1}
	}
	if direction == model.VoteUp {
		return voteOutcome{VoteActionChanged, 1, -1}
	}
	return voteOutcome{VoteActionChanged, -1, 1}
}

func parseDirection(s string) (int8, error) {
	switch s {
	case "up":
		return model.VoteUp, nil
	case "down":
		return model.VoteDown, nil
	default:
		return 0, errs.Validation("direction must be up or down")
	}
}

// applyVote 事务内：锁票行、按状态机落票、一条 UPDATE 改两个计数
func applyVote(tx *gorm.DB, targetType string, targetID uint64, voter string, direction int8,
	incrVotes func(up, down int64) error) (voteOutcome, error) {

	voteRepo := &mysql.VoteRepository{DB: tx}
	var existing *model.Vote
	v, err := voteRepo.FindForUpdate(targetType, targetID, voter)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return voteOutcome{}, err
		}
	} else {
		existing = v
	}

	outcome := voteTransition(existing, direction)
	switch outcome.Action {
	case VoteActionUpvoted, VoteActionDownvoted:
		err = voteRepo.Create(&model.Vote{
			TargetType:     targetType,
			TargetID:       targetID,
			VoterPrincipal: voter,
			Direction:      direction,
		})
	case VoteActionRemoved:
		err = voteRepo.Delete(existing.ID)
	case VoteActionChanged:
		err = voteRepo.UpdateDirection(existing.ID, direction)
	}
	if err != nil {
		return voteOutcome{}, err
	}
	if err := incrVotes(outcome.UpDelta, outcome.DownDelta); err != nil {
		return voteOutcome{}, err
	}
	return outcome, nil
}

// VoteOnPost 投票需要在站；禁言不拦投票（按现行为保留）。
// 新增的赞同票给作者记 1 分声望（作者是站长或自己投自己不计）。
func (s *VoteService) VoteOnPost(ctx context.Context, postID uint64, principal, directionStr string) (string, error) {
	direction, err := parseDirection(directionStr)
	if err != nil {
		return "", err
	}

	var outcome voteOutcome
	err = s.db.Transaction(func(tx *gorm.DB) error {
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
			return errs.PermissionDenied("must be a member to vote")
		}

		outcome, err = applyVote(tx, model.VoteTargetPost, postID, principal, direction, func(up, down int64) error {
			return postRepo.IncrVotes(postID, up, down)
		})
		if err != nil {
			return err
		}

		if outcome.Action == VoteActionUpvoted && principal != post.AuthorPrincipal {
			if err := awardKarma(tx, st, post.AuthorPrincipal, "vote"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	// 缓存增量更新，失败就删 Key 交给读侧回源重建
	if cerr := s.scoreCache.IncrScore(ctx, postID, outcome.UpDelta-outcome.DownDelta); cerr != nil {
		_ = s.scoreCache.DeleteScore(ctx, postID)
	}
	return outcome.Action, nil
}

// VoteOnComment 评论投票，规则同帖子，不计声望
func (s *VoteService) VoteOnComment(ctx context.Context, commentID uint64, principal, directionStr string) (string, error) {
	direction, err := parseDirection(directionStr)
	if err != nil {
		return "", err
	}

	var outcome voteOutcome
	err = s.db.Transaction(func(tx *gorm.DB) error {
		commentRepo := &mysql.CommentRepository{DB: tx}
		c, err := commentRepo.FindByID(commentID)
		if err != nil {
			return asNotFound(err, "comment not found")
		}
		stationRepo := &mysql.StationRepository{DB: tx}
		st, err := stationRepo.FindByID(c.StationID)
		if err != nil {
			return asNotFound(err, "station not found")
		}
		if st.IsArchived() {
			return errs.InvalidState("station archived")
		}
		memberRepo := &mysql.MembershipRepository{DB: tx}
		isMember, err := memberRepo.Exists(c.StationID, principal)
		if err != nil {
			return err
		}
		if !isMember {
			return errs.PermissionDenied("must be a member to vote")
		}
		outcome, err = applyVote(tx, model.VoteTargetComment, commentID, principal, direction, func(up, down int64) error {
			return commentRepo.IncrVotes(commentID, up, down)
		})
		return err
	})
	if err != nil {
		return "", err
	}
	return outcome.Action, nil
}

// GetPostScore 帖子净得分。先读缓存，miss 时加锁回源重建，拿不到锁就短退避再读
func (s *VoteService) GetPostScore(ctx context.Context, postID uint64) (int64, error) {
	if v, ok, err := s.scoreCache.GetScoreCached(ctx, postID); err == nil && ok {
		return v, nil
	}

	token := fmt.Sprintf("%d-%d", postID, time.Now().UnixNano())
	got, _ := s.lock.Acquire(ctx, postID, token)
	if got {
		defer func() { _ = s.lock.Release(ctx, postID, token) }()

		// 拿锁后二次检查
		if v, ok, err := s.scoreCache.GetScoreCached(ctx, postID); err == nil && ok {
			return v, nil
		}
		postRepo := &mysql.PostRepository{DB: s.db}
		post, err := postRepo.FindByID(postID)
		if err != nil {
			return 0, asNotFound(err, "post not found")
		}
		score := post.Upvotes - post.Downvotes
		_ = s.scoreCache.SetScore(ctx, postID, score)
		return score, nil
	}

	// 没拿到锁，短暂退避后再读一次缓存，避免全体打DB
	time.Sleep(50 * time.Millisecond)
	if v, ok, err := s.scoreCache.GetScoreCached(ctx, postID); err == nil && ok {
		return v, nil
	}
	postRepo := &mysql.PostRepository{DB: s.db}
	post, err := postRepo.FindByID(postID)
	if err != nil {
		return 0, asNotFound(err, "post not found")
	}
	return post.Upvotes - post.Downvotes, nil
}
