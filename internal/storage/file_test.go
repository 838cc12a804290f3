package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-board/internal/schema"
	"github.com/rxtech-lab/argo-board/internal/types"
)

type FileStorageTestSuite struct {
	suite.Suite
	storage *FileStorage
	dir     string
}

func (suite *FileStorageTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()

	storage, err := NewFileStorage(suite.dir, nil)
	suite.Require().NoError(err)
	suite.storage = storage
}

func TestFileStorageSuite(t *testing.T) {
	suite.Run(t, new(FileStorageTestSuite))
}

func sampleBoard() types.Board {
	board := types.NewBoard()
	node := schema.NewNode(types.NodeKindEvent, types.Position{X: 10, Y: 20})
	board.Nodes = append(board.Nodes, node)

	return board
}

func (suite *FileStorageTestSuite) TestSaveAndLoad() {
	board := sampleBoard()

	suite.Require().NoError(suite.storage.SaveBoard("momentum", board))

	loaded, err := suite.storage.LoadBoard("momentum")
	suite.Require().NoError(err)
	suite.Len(loaded.Nodes, 1)
	suite.Equal(board.Nodes[0].ID, loaded.Nodes[0].ID)
}

func (suite *FileStorageTestSuite) TestLoadMissingBoardReturnsEmpty() {
	loaded, err := suite.storage.LoadBoard("never-saved")
	suite.NoError(err)
	suite.Empty(loaded.Nodes)
	suite.Empty(loaded.Edges)
}

func (suite *FileStorageTestSuite) TestLoadCorruptBoardFallsBackToEmpty() {
	path := filepath.Join(suite.dir, "broken.json")
	suite.Require().NoError(os.WriteFile(path, []byte("not json"), 0644))

	loaded, err := suite.storage.LoadBoard("broken")
	suite.NoError(err)
	suite.Empty(loaded.Nodes)
	suite.Empty(loaded.Edges)
}

func (suite *FileStorageTestSuite) TestSaveReplacesPrevious() {
	suite.Require().NoError(suite.storage.SaveBoard("momentum", sampleBoard()))
	suite.Require().NoError(suite.storage.SaveBoard("momentum", types.NewBoard()))

	loaded, err := suite.storage.LoadBoard("momentum")
	suite.Require().NoError(err)
	suite.Empty(loaded.Nodes)
}

func (suite *FileStorageTestSuite) TestClearBoard() {
	suite.Require().NoError(suite.storage.SaveBoard("momentum", sampleBoard()))
	suite.Require().NoError(suite.storage.ClearBoard("momentum"))

	loaded, err := suite.storage.LoadBoard("momentum")
	suite.NoError(err)
	suite.Empty(loaded.Nodes)

	// Clearing again is a no-op.
	suite.NoError(suite.storage.ClearBoard("momentum"))
}

func (suite *FileStorageTestSuite) TestListBoards() {
	suite.Require().NoError(suite.storage.SaveBoard("beta", sampleBoard()))
	suite.Require().NoError(suite.storage.SaveBoard("alpha", sampleBoard()))

	names, err := suite.storage.ListBoards()
	suite.Require().NoError(err)
	suite.Equal([]string{"alpha", "beta"}, names)
}

func (suite *FileStorageTestSuite) TestSaveLeavesNoTempFiles() {
	suite.Require().NoError(suite.storage.SaveBoard("momentum", sampleBoard()))

	entries, err := os.ReadDir(suite.dir)
	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.Equal("momentum.json", entries[0].Name())
}
