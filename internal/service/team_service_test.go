//go:build integration
// +build integration

package service_test

import (
	"testing"

	"scrimhub-backend/internal/database/models"
	apperrors "scrimhub-backend/internal/errors"
	"scrimhub-backend/internal/service"
	"scrimhub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type TeamServiceTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	env  *env
}

func (suite *TeamServiceTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.env = newEnv(suite.base.DB)
}

func (suite *TeamServiceTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.base.SetupTest()
}

func (suite *TeamServiceTestSuite) TestCreateMakesViewerOwner() {
	game := suite.env.seedGame()
	user := suite.env.seedUser(game.ID)

	resp, err := suite.env.teams.Create(user.ID, &service.CreateTeamRequest{
		Name:         "Shadow Company",
		Region:       "NA",
		IsRecruiting: true,
	})
	suite.Require().NoError(err)
	suite.Equal("shadow-company", resp.Slug)
	suite.Equal(game.ID, resp.GameID)
	suite.Require().Len(resp.Memberships, 1)
	suite.Equal(user.ID, resp.Memberships[0].UserID)
	suite.Equal(models.TeamRoleOwner, resp.Memberships[0].Role)
}

func (suite *TeamServiceTestSuite) TestCreateRejectsDuplicateName() {
	game := suite.env.seedGame()
	first := suite.env.seedUser(game.ID)
	second := suite.env.seedUser(game.ID)

	_, err := suite.env.teams.Create(first.ID, &service.CreateTeamRequest{Name: "OpTic", Region: "NA"})
	suite.Require().NoError(err)

	_, err = suite.env.teams.Create(second.ID, &service.CreateTeamRequest{Name: "optic", Region: "EU"})
	suite.ErrorIs(err, apperrors.ErrTeamNameTaken)
}

func (suite *TeamServiceTestSuite) TestCreateBlockedAtCapacity() {
	game := suite.env.seedGame()
	user := suite.env.seedUser(game.ID)
	for i := 0; i < 3; i++ {
		owner := suite.env.seedUser(game.ID)
		team := suite.env.seedTeam(game.ID, owner.ID)
		suite.env.addMember(team.ID, user.ID, models.TeamRoleMember)
	}

	_, err := suite.env.teams.Create(user.ID, &service.CreateTeamRequest{Name: "One Too Many", Region: "NA"})
	suite.ErrorIs(err, apperrors.ErrCapacityExceeded)
}

func (suite *TeamServiceTestSuite) TestOwnerCannotLeave() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	team := suite.env.seedTeam(game.ID, owner.ID)

	err := suite.env.teams.Leave(owner.ID, team.Slug)
	suite.ErrorIs(err, apperrors.ErrOwnerCannotLeave)
}

func (suite *TeamServiceTestSuite) TestMemberLeaves() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	member := suite.env.seedUser(game.ID)
	team := suite.env.seedTeam(game.ID, owner.ID)
	suite.env.addMember(team.ID, member.ID, models.TeamRoleMember)

	suite.Require().NoError(suite.env.teams.Leave(member.ID, team.Slug))

	count, err := suite.env.membershipRepo.CountByUser(member.ID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *TeamServiceTestSuite) TestManagerCannotKickOwner() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	manager := suite.env.seedUser(game.ID)
	team := suite.env.seedTeam(game.ID, owner.ID)
	suite.env.addMember(team.ID, manager.ID, models.TeamRoleManager)

	reloaded, err := suite.env.teamRepo.GetWithMemberships(team.ID)
	suite.Require().NoError(err)
	ownerMembership := reloaded.MembershipOf(owner.ID)
	suite.Require().NotNil(ownerMembership)

	err = suite.env.teams.Kick(manager.ID, team.Slug, ownerMembership.ID)
	suite.ErrorIs(err, apperrors.ErrManagerCannotTouchOwner)
}

func (suite *TeamServiceTestSuite) TestCannotKickYourself() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	team := suite.env.seedTeam(game.ID, owner.ID)

	reloaded, err := suite.env.teamRepo.GetWithMemberships(team.ID)
	suite.Require().NoError(err)

	err = suite.env.teams.Kick(owner.ID, team.Slug, reloaded.MembershipOf(owner.ID).ID)
	suite.ErrorIs(err, apperrors.ErrCannotKickSelf)
}

func (suite *TeamServiceTestSuite) TestChangeRoleRejectsOwner() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	member := suite.env.seedUser(game.ID)
	team := suite.env.seedTeam(game.ID, owner.ID)
	membership := suite.env.addMember(team.ID, member.ID, models.TeamRoleMember)

	_, err := suite.env.teams.ChangeRole(owner.ID, team.Slug, membership.ID, &service.ChangeRoleRequest{Role: "owner"})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestPromoteToManager() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	member := suite.env.seedUser(game.ID)
	team := suite.env.seedTeam(game.ID, owner.ID)
	membership := suite.env.addMember(team.ID, member.ID, models.TeamRoleMember)

	role, err := suite.env.teams.ChangeRole(owner.ID, team.Slug, membership.ID, &service.ChangeRoleRequest{Role: "manager"})
	suite.Require().NoError(err)
	suite.Equal(models.TeamRoleManager, role)
}

func (suite *TeamServiceTestSuite) TestDisbandRemovesMemberships() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	member := suite.env.seedUser(game.ID)
	team := suite.env.seedTeam(game.ID, owner.ID)
	suite.env.addMember(team.ID, member.ID, models.TeamRoleMember)

	suite.Require().NoError(suite.env.teams.Disband(owner.ID, team.Slug))

	_, err := suite.env.teamRepo.GetByID(team.ID)
	suite.Error(err)

	count, err := suite.env.membershipRepo.CountByUser(member.ID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *TeamServiceTestSuite) TestDisbandRequiresOwner() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	manager := suite.env.seedUser(game.ID)
	team := suite.env.seedTeam(game.ID, owner.ID)
	suite.env.addMember(team.ID, manager.ID, models.TeamRoleManager)

	err := suite.env.teams.Disband(manager.ID, team.Slug)
	suite.ErrorIs(err, apperrors.ErrNotTeamOwner)
}

func (suite *TeamServiceTestSuite) TestListRecruitingFilters() {
	game := suite.env.seedGame()
	owner := suite.env.seedUser(game.ID)
	recruiting := suite.env.seedTeam(game.ID, owner.ID)

	closedOwner := suite.env.seedUser(game.ID)
	closed := suite.env.factories.Team.NotRecruiting(game.ID)
	suite.Require().NoError(suite.env.teamRepo.Create(closed))
	suite.env.addMember(closed.ID, closedOwner.ID, models.TeamRoleOwner)

	teams, err := suite.env.teams.ListRecruiting(&game.ID, nil)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal(recruiting.ID, teams[0].ID)
}

func TestTeamServiceSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
