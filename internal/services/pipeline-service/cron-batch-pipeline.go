package pipelineService

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/moonkaicuzui/hwk-loadplan/internal/cronjob"
	"github.com/moonkaicuzui/hwk-loadplan/internal/db"
	loadplanService "github.com/moonkaicuzui/hwk-loadplan/internal/services/loadplan-service"
	sftpService "github.com/moonkaicuzui/hwk-loadplan/internal/services/sftp-service"
	snapshotService "github.com/moonkaicuzui/hwk-loadplan/internal/services/snapshot-service"
	uploadlog "github.com/moonkaicuzui/hwk-loadplan/internal/services/upload-log"
	"github.com/moonkaicuzui/hwk-loadplan/internal/utils"
)

// One loadplan workbook per factory, matched by file-name prefix.
var factoryFilePrefixes = map[string]string{
	"A": "Factory_A",
	"B": "Factory_B",
	"C": "Factory_C",
	"D": "Factory_D",
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cronjob.RegisterJob("loadplan-pipeline-sun", RunScheduledPipeline, `0 18 * * 0`)
	cronjob.RegisterJob("loadplan-pipeline-tue", RunScheduledPipeline, `0 4 * * 2`)
	cronjob.RegisterJob("loadplan-pipeline-thu", RunScheduledPipeline, `0 4 * * 4`)
}

func RunScheduledPipeline() {
	dir := os.Getenv("loadplan_file_path")

	if err := GetFactoryFiles(dir); err != nil {
		log.Printf("loadplan pipeline: fetch failed: %v", err)
		return
	}

	result, err := ProcessLoadplanPipeline(dir)
	if err != nil {
		log.Printf("loadplan pipeline: %v", err)
		return
	}

	log.Printf("loadplan pipeline: run %s stored %d records", result.RunID, result.TotalRecords)
}

// GetFactoryFiles downloads the newest loadplan workbook per factory from the
// planning share into the local working directory.
func GetFactoryFiles(downloadPath string) error {
	remotePath := os.Getenv("loadplan_remote_path")

	client, sshConn, err := sftpService.NewClient()
	if err != nil {
		return err
	}
	defer client.Close()
	defer sshConn.Close()

	remoteFiles, err := client.ReadDir(remotePath)
	if err != nil {
		return err
	}

	downloadFunc := func(dstPath string, remoteFilePath string) error {
		remoteFile, err := client.Open(remoteFilePath)
		if err != nil {
			return err
		}
		defer remoteFile.Close()

		dstFile, err := os.Create(dstPath)
		if err != nil {
			return err
		}
		defer dstFile.Close()

		if _, err := remoteFile.WriteTo(dstFile); err != nil {
			return err
		}

		return nil
	}

	for _, factory := range loadplanService.FactoryIDs {
		latest, err := utils.GetLatestFile(remoteFiles, factoryFilePrefixes[factory])
		if err != nil {
			// A factory without a remote file contributes nothing; the
			// batch decides later whether the run is usable at all.
			log.Printf("factory %s: %v", factory, err)
			continue
		}

		localFilePath := filepath.Join(downloadPath, latest.Name())
		remoteFilePath := remotePath + "/" + latest.Name()
		if err := downloadFunc(localFilePath, remoteFilePath); err != nil {
			return fmt.Errorf("download %s: %w", remoteFilePath, err)
		}
	}

	return nil
}

func localFactoryFiles(dir string) map[string]string {
	files := map[string]string{}
	for _, factory := range loadplanService.FactoryIDs {
		path, err := utils.FindLatestFileWithPrefix(dir, factoryFilePrefixes[factory])
		if err != nil {
			continue
		}
		files[factory] = path
	}
	return files
}

// ProcessLoadplanPipeline parses every factory file in dir, stores the batch
// as one snapshot run and logs the upload per factory. A batch with no
// records is an error and nothing is persisted for it.
func ProcessLoadplanPipeline(dir string) (PipelineResult, error) {
	files := localFactoryFiles(dir)

	batch, err := loadplanService.ParseAll(files)
	if err != nil {
		return PipelineResult{}, err
	}

	runID := uuid.NewString()

	gormDB, err := db.ConnectGORM(`loadplan`)
	if err != nil {
		return PipelineResult{}, err
	}
	defer db.CloseGORM(gormDB)

	if err := snapshotService.SaveSnapshot(gormDB, runID, batch.Records); err != nil {
		return PipelineResult{}, fmt.Errorf("save snapshot: %w", err)
	}

	sqlxDB, err := db.ConnectSqlx(`loadplan`)
	if err != nil {
		return PipelineResult{}, err
	}
	defer sqlxDB.Close()

	for factory, path := range files {
		count := batch.FactoryCount[factory]
		if err := uploadlog.AddUploadLog(sqlxDB, runID, filepath.Base(path), count, count > 0, ""); err != nil {
			log.Printf("upload log for factory %s: %v", factory, err)
		}
	}

	return PipelineResult{
		RunID:        runID,
		TotalRecords: len(batch.Records),
		FactoryCount: batch.FactoryCount,
		Skipped:      batch.Skipped,
		Errors:       batch.Errors,
		Quality:      batch.Quality,
	}, nil
}

func RunPipeline(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req RunPipelineRequest

	if jsonPayload != "" {
		if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
			return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
		}
	}

	dir := req.Dir
	if dir == "" {
		dir = os.Getenv("loadplan_file_path")
	}

	if !req.SkipFetch {
		if err := GetFactoryFiles(dir); err != nil {
			return nil, fmt.Errorf("fetch loadplan files: %w", err)
		}
	}

	return ProcessLoadplanPipeline(dir)
}

// ParseLocal normalizes already-downloaded files without persisting anything.
func ParseLocal(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req ParseLocalRequest

	if jsonPayload != "" {
		if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
			return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
		}
	}

	dir := req.Dir
	if dir == "" {
		dir = os.Getenv("loadplan_file_path")
	}

	batch, err := loadplanService.ParseAll(localFactoryFiles(dir))
	if err != nil {
		return nil, err
	}

	return batch, nil
}

// UploadLoadplan parses one factory workbook uploaded in a multipart form.
// The factory id comes from the "factory" form field.
func UploadLoadplan(c *gin.Context) (interface{}, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, errors.New("incorrect content type, expected multipart/form-data")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.New("failed to get multipart form: " + err.Error())
	}

	if len(form.File) == 0 {
		return nil, errors.New("no file found in the request")
	}

	factory := c.PostForm("factory")
	if factory == "" {
		return nil, errors.New("missing factory form field")
	}

	var result loadplanService.FactoryResult

	for fieldName := range form.File {
		rows, fileName, err := utils.ReadUploadedSheetRows(c, fieldName, ``, loadplanService.LoadplanSkipRows)
		if err != nil {
			return nil, err
		}

		result, err = loadplanService.ParseFactoryRows(factory, rows)
		if err != nil {
			return nil, err
		}

		log.Printf("uploaded %s: factory %s, %d records, %d skipped, %d errors",
			fileName, factory, len(result.Records), result.Skipped, result.Errors)
	}

	return result, nil
}
