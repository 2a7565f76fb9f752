package logger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/areomh-controller/pkg/logger"
)

var _ = Describe("InitWithOutputs", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "out.log")
	})

	readLines := func() []string {
		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		return strings.Split(strings.TrimSpace(string(data)), "\n")
	}

	It("should write json entries with the named logger", func() {
		l := logger.InitWithOutputs("json", "debug", []string{path})
		l.Sugar().Named("mission").Infow("mission state transition", "from", "idle", "to", "pre_flight_check")
		Expect(l.Sync()).To(Succeed())

		lines := readLines()
		Expect(lines).To(HaveLen(1))

		var entry map[string]any
		Expect(json.Unmarshal([]byte(lines[0]), &entry)).To(Succeed())
		Expect(entry["severity"]).To(Equal("info"))
		Expect(entry["logger"]).To(Equal("mission"))
		Expect(entry["message"]).To(Equal("mission state transition"))
		Expect(entry["to"]).To(Equal("pre_flight_check"))
	})

	It("should fall back to info for an unknown level", func() {
		l := logger.InitWithOutputs("json", "verbose", []string{path})
		l.Debug("hidden")
		l.Info("shown")
		Expect(l.Sync()).To(Succeed())

		lines := readLines()
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(ContainSubstring("shown"))
	})
})
