package feed

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-board/pkg/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestParseConfig() {
	config, err := ParseConfig([]byte(`
address: ":9000"
boardName: momentum
dataPath: /var/lib/board
`))
	suite.Require().NoError(err)
	suite.Equal(":9000", config.Address)
	suite.Equal("momentum", config.BoardName)
	suite.Equal("/var/lib/board", config.DataPath)
}

func (suite *ConfigTestSuite) TestParseConfigAppliesDefaults() {
	config, err := ParseConfig([]byte(`boardName: momentum`))
	suite.Require().NoError(err)
	suite.Equal(DefaultConfig().Address, config.Address)
	suite.Equal(DefaultConfig().DataPath, config.DataPath)
}

func (suite *ConfigTestSuite) TestParseConfigRejectsBadYAML() {
	_, err := ParseConfig([]byte("address: [unclosed"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestParseConfigRejectsEmptyFields() {
	_, err := ParseConfig([]byte(`address: ""`))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}
