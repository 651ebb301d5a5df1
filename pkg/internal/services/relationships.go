package services

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/strandworks/strand/pkg/internal/database"
)

// SetFollowState adds or removes the follow edge between source and target.
// The two embedded lists are written one after another without a transaction;
// a crash in between leaves a one-sided edge. That weak-consistency window is
// a documented property of this store, not something to compensate for here.
func SetFollowState(sourceID, targetID uint, follow bool) error {
	if sourceID == targetID {
		return fmt.Errorf("follow: %w", ErrSelfAction)
	}

	source, err := GetAccount(sourceID)
	if err != nil {
		return err
	}
	target, err := GetAccount(targetID)
	if err != nil {
		return err
	}

	if follow {
		source.Following = lo.Uniq(append(source.Following, target.ID))
		target.Followers = lo.Uniq(append(target.Followers, source.ID))
	} else {
		source.Following = lo.Filter(source.Following, func(id uint, _ int) bool {
			return id != target.ID
		})
		target.Followers = lo.Filter(target.Followers, func(id uint, _ int) bool {
			return id != source.ID
		})
	}

	if err := database.C.Model(&source).Update("following", source.Following).Error; err != nil {
		return fmt.Errorf("unable to update following list: %v", err)
	}
	if err := database.C.Model(&target).Update("followers", target.Followers).Error; err != nil {
		return fmt.Errorf("unable to update followers list: %v", err)
	}

	return nil
}

// ToggleFollow flips the follow edge from the current account to the target
// and reports the state after the flip. There are no separate follow and
// unfollow operations, only this toggle.
func ToggleFollow(currentID, targetID uint) (bool, error) {
	if currentID == targetID {
		return false, fmt.Errorf("follow: %w", ErrSelfAction)
	}

	current, err := GetAccount(currentID)
	if err != nil {
		return false, err
	}
	if _, err := GetAccount(targetID); err != nil {
		return false, err
	}

	isFollowing := lo.Contains(current.Following, targetID)
	if err := SetFollowState(currentID, targetID, !isFollowing); err != nil {
		return isFollowing, err
	}

	return !isFollowing, nil
}
