// internal/app/features/authgoogle/resolver.go
package authgoogle

import (
	"context"
	"errors"

	accountstore "github.com/dalemusser/campushub/internal/app/store/accounts"
	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	"github.com/dalemusser/campushub/internal/app/system/apiutil"
	"github.com/dalemusser/campushub/internal/app/system/googleid"
	"github.com/dalemusser/campushub/internal/app/system/normalize"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.uber.org/zap"
)

// Resolver maps a verified email onto an internal account. It decides
// between the new-account and existing-account paths and enforces the
// domain-matching policy that gates self-service college affiliation.
type Resolver struct {
	accounts *accountstore.Store
	colleges *collegestore.Store
	log      *zap.Logger
}

func NewResolver(accounts *accountstore.Store, colleges *collegestore.Store, logger *zap.Logger) *Resolver {
	return &Resolver{accounts: accounts, colleges: colleges, log: logger}
}

// Resolve produces the authenticated account for verified claims, plus
// whether this call created it.
//
// collegeNameOrID and domainSuffix come from the sign-in request. Without
// them only an already-affiliated account may sign in. With them, the
// email's domain is checked against the suffix unless the account is
// already affiliated, a missing account is created, and an unaffiliated
// one is bound (first write wins, never overwritten).
func (rs *Resolver) Resolve(ctx context.Context, claims *googleid.Claims, collegeNameOrID, domainSuffix string) (models.Account, bool, error) {
	existing, err := rs.accounts.GetByEmail(ctx, claims.Email)
	known := err == nil
	if err != nil && !errors.Is(err, accountstore.ErrAccountNotFound) {
		return models.Account{}, false, apiutil.Wrap(apiutil.Dependency, "could not look up account", err)
	}

	if collegeNameOrID == "" {
		if !known || existing.CollegeID == nil {
			return models.Account{}, false, apiutil.E(apiutil.Authentication,
				"no account with a college affiliation exists for this email; sign in with your college to get started")
		}
		rs.addToRoster(ctx, existing)
		return existing, false, nil
	}

	college, err := rs.colleges.ResolveNameOrID(ctx, collegeNameOrID)
	if err != nil {
		if errors.Is(err, collegestore.ErrCollegeNotFound) {
			return models.Account{}, false, apiutil.E(apiutil.NotFound, "college not found")
		}
		return models.Account{}, false, apiutil.Wrap(apiutil.Dependency, "could not look up college", err)
	}

	// Already-affiliated accounts skip the domain check entirely; their
	// affiliation was verified when it was set.
	verified := known && existing.CollegeID != nil
	if !verified && domainSuffix != "" && !normalize.EmailMatchesSuffix(claims.Email, domainSuffix) {
		if !known {
			return models.Account{}, false, apiutil.E(apiutil.Authentication,
				"this email does not belong to the selected college; use your college email to create an account")
		}
		return models.Account{}, false, apiutil.E(apiutil.Authentication,
			"this email does not belong to the selected college")
	}

	if !known {
		handle := normalize.LocalPart(claims.Email)
		created, err := rs.accounts.Create(ctx, models.Account{
			Handle:    &handle,
			Email:     claims.Email,
			FullName:  claims.FullName,
			AvatarURL: claims.AvatarURL,
			CollegeID: &college.ID,
		})
		if err != nil {
			return models.Account{}, false, apiutil.Wrap(apiutil.Dependency, "could not create account", err)
		}
		rs.addToRoster(ctx, created)
		return created, true, nil
	}

	if existing.CollegeID == nil {
		if _, err := rs.accounts.SetCollegeIfUnset(ctx, existing.ID, college.ID); err != nil {
			return models.Account{}, false, apiutil.Wrap(apiutil.Dependency, "could not set college affiliation", err)
		}
		// Reload: a concurrent sign-in may have won the bind.
		existing, err = rs.accounts.GetByID(ctx, existing.ID)
		if err != nil {
			return models.Account{}, false, apiutil.Wrap(apiutil.Dependency, "could not reload account", err)
		}
	}

	rs.addToRoster(ctx, existing)
	return existing, false, nil
}

// addToRoster mirrors the affiliation onto the college's member set. The
// account write is already durable, so a roster failure degrades the side
// effect but never the sign-in.
func (rs *Resolver) addToRoster(ctx context.Context, acct models.Account) {
	if acct.CollegeID == nil {
		return
	}
	if err := rs.colleges.AddMember(ctx, *acct.CollegeID, acct.ID); err != nil {
		rs.log.Warn("failed to add account to college roster",
			zap.String("account_id", acct.ID.Hex()),
			zap.String("college_id", acct.CollegeID.Hex()),
			zap.Error(err))
	}
}
