package cli

import (
	"fmt"

	"github.com/dmitrijs2005/devnest/internal/filex"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (a *App) newCourseCmd() *cobra.Command {
	course := &cobra.Command{
		Use:   "course",
		Short: "Course maintenance",
	}

	course.AddCommand(&cobra.Command{
		Use:   "upload-syllabus <course-id> <file.pdf>",
		Short: "Upload a PDF syllabus for a course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid course id %q: %w", args[0], err)
			}
			data, err := filex.ReadPDF(args[1], filex.MaxSyllabusSize)
			if err != nil {
				return err
			}

			url, err := a.courses.SyllabusUploadURL(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := a.upload(cmd.Context(), url, data, "application/pdf"); err != nil {
				return err
			}
			a.printf("syllabus uploaded (%d bytes)\n", len(data))
			return nil
		},
	})
	return course
}
